package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inkwell/content"
)

func TestItem_CanonicalSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     content.Item
		expected string
	}{
		{
			name:     "explicit slug wins over title",
			item:     content.Item{"slug": "My-Post", "title": "Something Else"},
			expected: "my-post",
		},
		{
			name:     "explicit slug is trimmed",
			item:     content.Item{"slug": "  Padded  "},
			expected: "padded",
		},
		{
			name:     "whitespace-only slug falls back to title",
			item:     content.Item{"slug": "   ", "title": "Fallback Title"},
			expected: "fallback-title",
		},
		{
			name:     "title is slugified",
			item:     content.Item{"title": "Hello, World!"},
			expected: "hello-world",
		},
		{
			name:     "no slug and no title",
			item:     content.Item{"excerpt": "just an excerpt"},
			expected: "",
		},
		{
			name:     "wrong-typed slug is ignored",
			item:     content.Item{"slug": 42, "title": "Typed Wrong"},
			expected: "typed-wrong",
		},
		{
			name:     "title of only punctuation",
			item:     content.Item{"title": "???"},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.item.CanonicalSlug())
		})
	}
}

func TestItem_Accessors(t *testing.T) {
	t.Parallel()

	it := content.Item{
		"title":           "A Title",
		"excerpt":         "short",
		"author":          "Someone",
		"image":           "https://cdn.example.com/a.jpg",
		"bookTitle":       "The Book",
		"clubName":        "Readers Anonymous",
		"clubDescription": "we read",
	}

	assert.Equal(t, "A Title", it.Title())
	assert.Equal(t, "short", it.Excerpt())
	assert.Equal(t, "Someone", it.Author())
	assert.Equal(t, "https://cdn.example.com/a.jpg", it.Image())
	assert.Equal(t, "The Book", it.BookTitle())
	assert.Equal(t, "Readers Anonymous", it.ClubName())
	assert.Equal(t, "we read", it.ClubDescription())
	assert.Equal(t, "short", it.Summary())

	assert.Equal(t, "Readers Anonymous", it.DisplayName(content.KindBookClub))
	assert.Equal(t, "A Title", it.DisplayName(content.KindBlog))
}

func TestItem_SummaryFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "desc", content.Item{"description": "desc"}.Summary())
	assert.Equal(t, "club", content.Item{"clubDescription": "club"}.Summary())
	assert.Equal(t, "", content.Item{}.Summary())
}

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("reads posts for blog pages", func(t *testing.T) {
		t.Parallel()

		raw := json.RawMessage(`{"posts":[{"title":"One"},{"title":"Two"}]}`)
		items := content.Collection(raw, content.KindBlog)
		assert.Len(t, items, 2)
		assert.Equal(t, "One", items[0].Title())
	})

	t.Run("reads items for other notifying pages", func(t *testing.T) {
		t.Parallel()

		raw := json.RawMessage(`{"items":[{"title":"A Musing"}]}`)
		items := content.Collection(raw, content.KindMusings)
		assert.Len(t, items, 1)
	})

	t.Run("absent collection yields empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, content.Collection(json.RawMessage(`{"other":true}`), content.KindBlog))
	})

	t.Run("wrong-typed collection yields empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, content.Collection(json.RawMessage(`{"posts":"nope"}`), content.KindBlog))
	})

	t.Run("unparsable content yields empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, content.Collection(json.RawMessage(`not json`), content.KindBlog))
		assert.Empty(t, content.Collection(nil, content.KindBlog))
	})

	t.Run("non-object entries are skipped", func(t *testing.T) {
		t.Parallel()

		raw := json.RawMessage(`{"posts":[{"title":"Kept"},"dropped",7]}`)
		items := content.Collection(raw, content.KindBlog)
		assert.Len(t, items, 1)
		assert.Equal(t, "Kept", items[0].Title())
	})
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := content.ParseKind("blog")
	assert.NoError(t, err)
	assert.Equal(t, content.KindBlog, k)

	_, err = content.ParseKind("not-a-page")
	assert.ErrorIs(t, err, content.ErrUnknownKind)
}

func TestKind_Notifying(t *testing.T) {
	t.Parallel()

	assert.True(t, content.KindBlog.Notifying())
	assert.True(t, content.KindRecommendations.Notifying())
	assert.True(t, content.KindMusings.Notifying())
	assert.True(t, content.KindBookClub.Notifying())
	assert.False(t, content.KindAbout.Notifying())
	assert.False(t, content.KindEmailSettings.Notifying())
}
