package content

import (
	"encoding/json"
	"strings"

	"github.com/dmitrymomot/inkwell/pkg/slug"
)

// Item is a permissive view over one record in a page's content collection.
// Field accessors return the empty string for missing or wrong-typed values.
type Item map[string]any

// str extracts a string field, tolerating absence and wrong types.
func (it Item) str(key string) string {
	v, ok := it[key].(string)
	if !ok {
		return ""
	}
	return v
}

func (it Item) Title() string       { return it.str("title") }
func (it Item) Slug() string        { return it.str("slug") }
func (it Item) Excerpt() string     { return it.str("excerpt") }
func (it Item) Description() string { return it.str("description") }
func (it Item) Image() string       { return it.str("image") }
func (it Item) Author() string      { return it.str("author") }
func (it Item) BookTitle() string   { return it.str("bookTitle") }
func (it Item) ClubName() string    { return it.str("clubName") }

// Summary returns the item's excerpt, falling back through the other
// descriptive fields so a default email body always has something to say.
func (it Item) Summary() string {
	for _, s := range []string{it.Excerpt(), it.Description(), it.str("clubDescription")} {
		if s != "" {
			return s
		}
	}
	return ""
}

// ClubDescription returns the book club blurb.
func (it Item) ClubDescription() string { return it.str("clubDescription") }

// DisplayName returns the human-facing name for the item: the club name for
// book clubs (falling back to title), the title otherwise.
func (it Item) DisplayName(kind Kind) string {
	if kind == KindBookClub {
		if name := it.ClubName(); name != "" {
			return name
		}
	}
	return it.Title()
}

// CanonicalSlug derives the item's identity key: the explicit slug trimmed
// and lowercased when present, otherwise the slugified title, otherwise "".
// The key is not guaranteed globally unique; collisions between items with
// identical derived slugs are possible.
func (it Item) CanonicalSlug() string {
	if s := strings.TrimSpace(it.Slug()); s != "" {
		return strings.ToLower(s)
	}
	return slug.Make(it.Title())
}

// Collection extracts the item collection from a page's opaque content blob.
// An absent, unparsable, or wrongly-typed collection yields an empty slice;
// non-object entries within the collection are skipped.
func Collection(raw json.RawMessage, kind Kind) []Item {
	if len(raw) == 0 {
		return nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	list, ok := doc[kind.CollectionKey()].([]any)
	if !ok {
		return nil
	}

	items := make([]Item, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			items = append(items, Item(m))
		}
	}
	return items
}
