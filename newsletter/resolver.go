package newsletter

import (
	"strings"

	"github.com/dmitrymomot/inkwell/content"
	"github.com/dmitrymomot/inkwell/pkg/email"
)

// Resolved is the outcome of merging admin overrides with the environment
// fallback for one dispatch. When Usable is false the other fields are still
// populated but must not be used to send.
type Resolved struct {
	Usable          bool
	Transport       email.TransportConfig
	From            string
	SubjectTemplate string // empty means use the built-in subject
	BodyTemplate    string // empty means use the built-in layout
}

// Resolve merges the admin's email settings with the process-wide fallback.
//
// Credentials are never mixed field-by-field: either the override supplies a
// complete user+password pair (in which case its host, port and secure flag
// apply, each falling back individually only when unspecified), or the
// fallback descriptor is used wholesale. The configuration is usable when the
// override pair is complete or the fallback has host, user and password.
//
// Resolve never fails; an unusable configuration is reported through the
// Usable flag.
func Resolve(s Settings, fallback email.Config, kind content.Kind) Resolved {
	overrideComplete := s.SMTPUsername != "" && s.SMTPPassword != ""
	fallbackComplete := fallback.SMTPHost != "" && fallback.SMTPUsername != "" && fallback.SMTPPassword != ""

	r := Resolved{Usable: overrideComplete || fallbackComplete}

	if overrideComplete {
		transport := email.TransportConfig{
			Host:     s.SMTPHost,
			Port:     s.SMTPPort,
			Secure:   fallback.SMTPSecure,
			Username: s.SMTPUsername,
			Password: s.SMTPPassword,
		}
		if transport.Host == "" {
			transport.Host = fallback.SMTPHost
		}
		if transport.Port == 0 {
			transport.Port = fallback.SMTPPort
		}
		if s.SMTPSecure != nil {
			transport.Secure = *s.SMTPSecure
		}
		r.Transport = transport
	} else {
		r.Transport = fallback.Transport()
	}

	// Sender address precedence: admin sender, then the admin's SMTP user
	// identity, then the fallback sender.
	switch {
	case s.From != "":
		r.From = s.From
	case s.SMTPUsername != "":
		r.From = s.SMTPUsername
	default:
		r.From = fallback.SenderEmail
	}

	t := s.Template(kind)
	if strings.TrimSpace(t.Subject) != "" {
		r.SubjectTemplate = t.Subject
	}
	if strings.TrimSpace(t.Body) != "" {
		r.BodyTemplate = t.Body
	}

	return r
}
