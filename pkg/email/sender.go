package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending a single email.
type SendEmailParams struct {
	From     string `json:"from"`      // Sender address
	SendTo   string `json:"send_to"`   // Recipient address
	Subject  string `json:"subject"`   // Subject line
	BodyHTML string `json:"body_html"` // HTML body
}

// emailRegex is intentionally loose: it rejects obviously broken addresses
// without trying to fully validate RFC 5322.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidAddress reports whether s looks like a deliverable email address.
func IsValidAddress(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// Validate checks that the parameters describe a sendable message.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if !IsValidAddress(p.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !IsValidAddress(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// TransportConfig is the resolved set of SMTP connection parameters used to
// send mail for one dispatch.
type TransportConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Secure   bool   `json:"secure"` // implicit TLS when true, STARTTLS otherwise
	Username string `json:"username"`
	Password string `json:"password"`
}
