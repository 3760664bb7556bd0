package content

// Kind identifies a page by its fixed slug.
type Kind string

const (
	KindBlog            Kind = "blog"
	KindRecommendations Kind = "recommendations"
	KindMusings         Kind = "musings"
	KindBookClub        Kind = "book-club"
	KindEmailSettings   Kind = "email-settings"
	KindAbout           Kind = "about"
	KindHome            Kind = "home"
	KindLinks           Kind = "links"
)

var allKinds = map[Kind]struct{}{
	KindBlog:            {},
	KindRecommendations: {},
	KindMusings:         {},
	KindBookClub:        {},
	KindEmailSettings:   {},
	KindAbout:           {},
	KindHome:            {},
	KindLinks:           {},
}

// ParseKind validates a page slug from the outside world.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := allKinds[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// Notifying reports whether saves to this page can announce new items to
// subscribers.
func (k Kind) Notifying() bool {
	switch k {
	case KindBlog, KindRecommendations, KindMusings, KindBookClub:
		return true
	}
	return false
}

// CollectionKey returns the JSON key holding the page's item collection.
func (k Kind) CollectionKey() string {
	if k == KindBlog {
		return "posts"
	}
	return "items"
}

// Path returns the public URL path prefix for items of this kind.
func (k Kind) Path() string {
	return "/" + string(k) + "/"
}
