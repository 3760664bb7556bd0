package newsletter

import (
	"encoding/json"

	"github.com/dmitrymomot/inkwell/content"
)

// Template is an admin-supplied subject/body pair for one content kind.
type Template struct {
	Subject string
	Body    string
}

// Settings is the parsed view of the email-settings page. Absence of a field
// means "use the default"; Port and Secure are tri-state so an unspecified
// value can be told apart from an explicit zero/false.
type Settings struct {
	From         string
	SMTPHost     string
	SMTPPort     int // 0 when unspecified
	SMTPSecure   *bool
	SMTPUsername string
	SMTPPassword string

	templates map[content.Kind]Template
}

// Template returns the admin-supplied template pair for a content kind.
// The zero value is returned when none was configured.
func (s Settings) Template(kind content.Kind) Template {
	return s.templates[kind]
}

// ParseSettings reads the email-settings page content. Parsing is permissive:
// an unparsable blob or missing fields produce zero values, never an error,
// so a broken settings page degrades to the environment fallback.
func ParseSettings(raw json.RawMessage) Settings {
	var doc map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &doc) != nil {
		return Settings{}
	}

	s := Settings{From: asString(doc["from"])}

	if smtp, ok := doc["smtp"].(map[string]any); ok {
		s.SMTPHost = asString(smtp["host"])
		s.SMTPPort = asInt(smtp["port"])
		s.SMTPUsername = asString(smtp["user"])
		s.SMTPPassword = asString(smtp["pass"])
		if b, ok := smtp["secure"].(bool); ok {
			s.SMTPSecure = &b
		}
	}

	if templates, ok := doc["templates"].(map[string]any); ok {
		s.templates = make(map[content.Kind]Template, len(templates))
		for key, v := range templates {
			kind, err := content.ParseKind(key)
			if err != nil || !kind.Notifying() {
				continue
			}
			t, ok := v.(map[string]any)
			if !ok {
				continue
			}
			s.templates[kind] = Template{
				Subject: asString(t["subject"]),
				Body:    asString(t["body"]),
			}
		}
	}

	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asInt tolerates the two shapes admin forms produce: JSON numbers (decoded
// as float64) and numeric strings.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		var out int
		for _, r := range n {
			if r < '0' || r > '9' {
				return 0
			}
			out = out*10 + int(r-'0')
		}
		return out
	}
	return 0
}
