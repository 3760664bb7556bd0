package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inkwell/content"
)

func TestNewItems(t *testing.T) {
	t.Parallel()

	t.Run("reports only items with unseen canonical slugs", func(t *testing.T) {
		t.Parallel()

		before := []content.Item{{"slug": "a"}}
		after := []content.Item{
			{"slug": "a"},
			{"slug": "b", "title": "New One"},
		}

		fresh := content.NewItems(before, after)
		require.Len(t, fresh, 1)
		assert.Equal(t, "b", fresh[0].CanonicalSlug())
	})

	t.Run("edits do not produce announcements", func(t *testing.T) {
		t.Parallel()

		before := []content.Item{
			{"slug": "post-1", "title": "Old Title"},
			{"slug": "post-2"},
		}
		after := []content.Item{
			{"slug": "post-1", "title": "Rewritten Title"},
			{"slug": "post-2", "excerpt": "now with excerpt"},
		}

		assert.Empty(t, content.NewItems(before, after))
	})

	t.Run("saving the same collection twice is idempotent", func(t *testing.T) {
		t.Parallel()

		collection := []content.Item{{"title": "One"}, {"title": "Two"}}

		first := content.NewItems(nil, collection)
		require.Len(t, first, 2)
		assert.Empty(t, content.NewItems(collection, collection))
	})

	t.Run("items with empty canonical slug are never reported", func(t *testing.T) {
		t.Parallel()

		after := []content.Item{
			{"excerpt": "no title or slug"},
			{"title": "!!!"},
			{"title": "Real Post"},
		}

		fresh := content.NewItems(nil, after)
		require.Len(t, fresh, 1)
		assert.Equal(t, "real-post", fresh[0].CanonicalSlug())
	})

	t.Run("matches via title-derived slug against explicit slug", func(t *testing.T) {
		t.Parallel()

		before := []content.Item{{"slug": "hello-world"}}
		after := []content.Item{{"title": "Hello, World!"}}

		assert.Empty(t, content.NewItems(before, after))
	})

	t.Run("preserves after ordering", func(t *testing.T) {
		t.Parallel()

		after := []content.Item{
			{"slug": "c"},
			{"slug": "a"},
			{"slug": "b"},
		}

		fresh := content.NewItems(nil, after)
		require.Len(t, fresh, 3)
		assert.Equal(t, "c", fresh[0].CanonicalSlug())
		assert.Equal(t, "a", fresh[1].CanonicalSlug())
		assert.Equal(t, "b", fresh[2].CanonicalSlug())
	})

	t.Run("colliding new slugs are both reported", func(t *testing.T) {
		t.Parallel()

		after := []content.Item{
			{"title": "Same Name"},
			{"title": "Same Name"},
		}

		assert.Len(t, content.NewItems(nil, after), 2)
	})

	t.Run("empty inputs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, content.NewItems(nil, nil))
		assert.Empty(t, content.NewItems([]content.Item{{"slug": "x"}}, nil))
	})
}
