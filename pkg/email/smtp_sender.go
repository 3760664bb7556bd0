package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

type smtpSender struct {
	client *mail.Client
}

// NewSMTPSender creates an SMTP-backed email sender from a transport
// descriptor. Host and credentials are required for runtime operation; this
// enforces explicit configuration rather than silent failures mid-dispatch.
func NewSMTPSender(cfg TransportConfig) (EmailSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", ErrInvalidConfig)
	}

	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		// Upgrade to TLS when the server offers it, but don't refuse to talk
		// to local development servers that don't.
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &smtpSender{client: client}, nil
}

// SendEmail delivers one HTML message over SMTP.
func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(params.From); err != nil {
		return fmt.Errorf("%w: invalid From address: %v", ErrInvalidParams, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return fmt.Errorf("%w: invalid SendTo address: %v", ErrInvalidParams, err)
	}
	msg.Subject(params.Subject)
	msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	return nil
}
