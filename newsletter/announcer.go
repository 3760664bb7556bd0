package newsletter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/inkwell/content"
	"github.com/dmitrymomot/inkwell/pkg/email"
)

// SettingsSource loads the admin's email settings for one dispatch.
type SettingsSource interface {
	EmailSettings(ctx context.Context) (Settings, error)
}

// Recipient is one subscribed reader.
type Recipient struct {
	Email string
	Name  string
}

// Roster lists the readers eligible for announcements.
type Roster interface {
	ListSubscribed(ctx context.Context) ([]Recipient, error)
}

// SenderFactory constructs a mail sender from a resolved transport
// descriptor. Injecting it keeps dispatch deterministic under test.
type SenderFactory func(email.TransportConfig) (email.EmailSender, error)

// Result is the outcome tally of one dispatch. Total counts recipients with
// a non-blank address; Sent counts successful deliveries.
type Result struct {
	Sent  int
	Total int
}

// Announcer dispatches one announcement email per subscribed reader for a
// newly published content item.
type Announcer struct {
	settings  SettingsSource
	roster    Roster
	newSender SenderFactory
	fallback  email.Config
	baseURL   string
	log       *slog.Logger
}

// NewAnnouncer creates an announcement dispatcher. A nil factory defaults to
// the SMTP sender; a nil logger defaults to slog.Default().
func NewAnnouncer(settings SettingsSource, roster Roster, factory SenderFactory, fallback email.Config, baseURL string, log *slog.Logger) *Announcer {
	if factory == nil {
		factory = email.NewSMTPSender
	}
	if log == nil {
		log = slog.Default()
	}
	return &Announcer{
		settings:  settings,
		roster:    roster,
		newSender: factory,
		fallback:  fallback,
		baseURL:   baseURL,
		log:       log,
	}
}

// Announce notifies every subscribed reader about one content item.
//
// Configuration is resolved first; an unusable configuration fails the whole
// dispatch before any roster lookup or send. Sends run sequentially, one
// recipient at a time, which doubles as natural pacing against the SMTP
// server. A failed send is logged and excluded from the Sent tally, and the
// loop continues; one bad address never blocks the rest of the list.
func (a *Announcer) Announce(ctx context.Context, kind content.Kind, item content.Item) (Result, error) {
	settings, err := a.settings.EmailSettings(ctx)
	if err != nil {
		// A broken settings page degrades to the environment fallback.
		a.log.WarnContext(ctx, "failed to load email settings, using fallback",
			slog.String("page", string(kind)),
			slog.Any("error", err))
		settings = Settings{}
	}

	resolved := Resolve(settings, a.fallback, kind)
	if !resolved.Usable {
		return Result{}, fmt.Errorf("%w: cannot announce %q", ErrNotConfigured, item.CanonicalSlug())
	}

	subscribers, err := a.roster.ListSubscribed(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("newsletter: list subscribers: %w", err)
	}

	recipients := make([]Recipient, 0, len(subscribers))
	for _, r := range subscribers {
		if strings.TrimSpace(r.Email) == "" {
			continue
		}
		recipients = append(recipients, r)
	}

	result := Result{Total: len(recipients)}
	if result.Total == 0 {
		return result, nil
	}

	sender, err := a.newSender(resolved.Transport)
	if err != nil {
		return result, fmt.Errorf("newsletter: build sender: %w", err)
	}

	subject := Subject(resolved.SubjectTemplate, kind, item)

	for _, recipient := range recipients {
		// Each body is bound to the recipient so the unsubscribe link is
		// personalized.
		body := Render(item, kind, recipient.Email, resolved.BodyTemplate, a.baseURL)

		err := sender.SendEmail(ctx, email.SendEmailParams{
			From:     resolved.From,
			SendTo:   recipient.Email,
			Subject:  subject,
			BodyHTML: body,
		})
		if err != nil {
			a.log.ErrorContext(ctx, "announcement send failed",
				slog.String("recipient", recipient.Email),
				slog.String("page", string(kind)),
				slog.String("slug", item.CanonicalSlug()),
				slog.Any("error", err))
			continue
		}
		result.Sent++
	}

	return result, nil
}
