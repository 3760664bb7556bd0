package content

// NewItems returns every item in after whose canonical slug is non-empty and
// not present in before. Order of after is preserved; no de-duplication is
// performed within after, so two new items with colliding derived slugs are
// both reported.
func NewItems(before, after []Item) []Item {
	known := make(map[string]struct{}, len(before))
	for _, it := range before {
		if s := it.CanonicalSlug(); s != "" {
			known[s] = struct{}{}
		}
	}

	var fresh []Item
	for _, it := range after {
		s := it.CanonicalSlug()
		if s == "" {
			continue
		}
		if _, ok := known[s]; ok {
			continue
		}
		fresh = append(fresh, it)
	}
	return fresh
}
