package newsletter

import (
	"net/url"
	"strings"

	"github.com/dmitrymomot/inkwell/content"
)

// unsubscribePath is where rendered unsubscribe links point; the audience
// module serves this route.
const unsubscribePath = "/unsubscribe"

// Render produces one complete HTML announcement document for a recipient.
//
// When bodyTemplate is non-blank it is used with placeholder substitution;
// otherwise a built-in per-kind layout applies. Two guarantees hold on every
// path: the output carries a personalized unsubscribe link (a custom template
// cannot suppress it), and the output is a full HTML document (fragments are
// wrapped in a minimal shell).
//
// Render performs no I/O and always returns a string.
func Render(item content.Item, kind content.Kind, recipient, bodyTemplate, baseURL string) string {
	link := ItemLink(baseURL, kind, item)
	unsubscribe := UnsubscribeLink(baseURL, recipient)

	imageURL := item.Image()
	imageTag := ""
	if imageURL != "" {
		imageTag = `<img src="` + escape(imageURL) + `" alt="` + escape(item.DisplayName(kind)) + `" style="max-width:100%;border-radius:8px;" />`
	}

	var html string
	if strings.TrimSpace(bodyTemplate) != "" {
		html = substitute(bodyTemplate, item, link, unsubscribe, imageTag, imageURL)
	} else {
		html = defaultBody(item, kind, link, imageTag)
	}

	html = ensureUnsubscribe(html, unsubscribe)
	return ensureDocument(html)
}

// ItemLink builds the absolute URL of a content item.
func ItemLink(baseURL string, kind content.Kind, item content.Item) string {
	return strings.TrimSuffix(baseURL, "/") + kind.Path() + url.PathEscape(item.CanonicalSlug())
}

// UnsubscribeLink builds the personalized unsubscribe URL for a recipient.
func UnsubscribeLink(baseURL, recipient string) string {
	return strings.TrimSuffix(baseURL, "/") + unsubscribePath + "?email=" + url.QueryEscape(recipient)
}

// htmlEscaper covers the characters that can break out of markup or
// attribute values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return htmlEscaper.Replace(s)
}

// substitute replaces every occurrence of the recognized placeholder tokens.
// Text values are HTML-escaped; link, image markup and URL substitutions are
// pre-built and inserted as-is.
func substitute(template string, item content.Item, link, unsubscribe, imageTag, imageURL string) string {
	return strings.NewReplacer(
		"{{title}}", escape(item.Title()),
		"{{excerpt}}", escape(item.Excerpt()),
		"{{description}}", escape(item.Description()),
		"{{clubDescription}}", escape(item.ClubDescription()),
		"{{author}}", escape(item.Author()),
		"{{bookTitle}}", escape(item.BookTitle()),
		"{{clubName}}", escape(item.ClubName()),
		"{{link}}", link,
		"{{joinLink}}", link,
		"{{image}}", imageTag,
		"{{clubImage}}", imageTag,
		"{{imageUrl}}", imageURL,
		"{{clubImageUrl}}", imageURL,
		"{{unsubscribeUrl}}", unsubscribe,
	).Replace(template)
}

// ensureUnsubscribe guarantees the unsubscribe affordance. If the markup
// already links to the personalized unsubscribe URL (the template used
// {{unsubscribeUrl}} itself) nothing is added; otherwise a footer is inserted
// before the closing body tag, or appended when there is none.
func ensureUnsubscribe(html, unsubscribe string) string {
	if strings.Contains(html, unsubscribe) {
		return html
	}

	footer := `<p style="font-size:12px;color:#999999;text-align:center;margin-top:32px;">` +
		`You are receiving this because you subscribed to updates. ` +
		`<a href="` + unsubscribe + `" style="color:#999999;">Unsubscribe</a></p>`

	if idx := strings.LastIndex(lowerASCII(html), "</body>"); idx >= 0 {
		return html[:idx] + footer + html[idx:]
	}
	return html + footer
}

// lowerASCII lowers ASCII letters only. Unlike strings.ToLower it preserves
// byte length, so offsets found in the copy are valid in the original string
// (Unicode lowering can grow characters, e.g. U+0130).
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// ensureDocument wraps bare fragments in a minimal HTML document shell.
func ensureDocument(html string) string {
	lower := lowerASCII(html)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return html
	}

	return `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
</head>
<body style="margin:0 auto;max-width:600px;padding:24px;font-family:Georgia,'Times New Roman',serif;color:#222222;line-height:1.6;">
` + html + `
</body>
</html>`
}
