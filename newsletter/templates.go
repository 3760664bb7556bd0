package newsletter

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/inkwell/content"
)

// layoutCopy holds the wording that differs between content kinds in the
// built-in layout; the structure is shared.
type layoutCopy struct {
	intro          string
	cta            string
	defaultSubject string // Sprintf-style, receives the item's display name
}

var copyByKind = map[content.Kind]layoutCopy{
	content.KindBlog: {
		intro:          "A new post just went up on the blog.",
		cta:            "Read the post",
		defaultSubject: "New blog post: %s",
	},
	content.KindRecommendations: {
		intro:          "A fresh list of recommendations is up.",
		cta:            "See the list",
		defaultSubject: "New recommendations: %s",
	},
	content.KindMusings: {
		intro:          "A new musing has been published.",
		cta:            "Read it",
		defaultSubject: "A new musing: %s",
	},
	content.KindBookClub: {
		intro:          "The book club has a new pick.",
		cta:            "Join the club",
		defaultSubject: "Book club: %s",
	},
}

// kindCopy falls back to the blog wording for kinds without their own copy,
// which keeps the renderer total even for non-notifying input.
func kindCopy(kind content.Kind) layoutCopy {
	if c, ok := copyByKind[kind]; ok {
		return c
	}
	return copyByKind[content.KindBlog]
}

// Subject produces the announcement subject line. A non-blank admin template
// has its single placeholder substituted; otherwise the built-in per-kind
// subject applies.
func Subject(template string, kind content.Kind, item content.Item) string {
	name := item.DisplayName(kind)
	if strings.TrimSpace(template) != "" {
		return strings.NewReplacer(
			"{{title}}", name,
			"{{clubName}}", item.ClubName(),
		).Replace(template)
	}
	return fmt.Sprintf(kindCopy(kind).defaultSubject, name)
}

// defaultBody renders the built-in layout: greeting, optional image, title,
// excerpt, a call-to-action button and a signature. The unsubscribe footer
// and document shell are added by the shared pipeline in Render.
func defaultBody(item content.Item, kind content.Kind, link, imageTag string) string {
	c := kindCopy(kind)
	name := escape(item.DisplayName(kind))

	var b strings.Builder
	b.WriteString(`<p>Hi there,</p>`)
	b.WriteString(`<p>` + c.intro + `</p>`)

	if imageTag != "" {
		b.WriteString(`<div style="text-align:center;margin:24px 0;">` + imageTag + `</div>`)
	}

	b.WriteString(`<h1 style="font-size:24px;margin:24px 0 8px;">` + name + `</h1>`)

	if kind == content.KindBookClub {
		if book := item.BookTitle(); book != "" {
			b.WriteString(`<p>This time we are reading <em>` + escape(book) + `</em>.</p>`)
		}
	}

	if summary := item.Summary(); summary != "" {
		b.WriteString(`<p>` + escape(summary) + `</p>`)
	}

	b.WriteString(`<p style="text-align:center;margin:32px 0;">` +
		`<a href="` + link + `" style="display:inline-block;padding:12px 24px;background-color:#222222;color:#ffffff;text-decoration:none;border-radius:6px;">` +
		c.cta + `</a></p>`)

	b.WriteString(`<p>Happy reading,<br />Inkwell</p>`)

	return b.String()
}
