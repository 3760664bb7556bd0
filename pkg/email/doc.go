// Package email provides a provider-agnostic interface for sending HTML
// emails, with an SMTP implementation backed by github.com/wneessen/go-mail
// and a development sender that writes messages to disk.
//
// # Architecture
//
// The package is built around the EmailSender interface, allowing the actual
// transport to be swapped without changing application code:
//
//   - NewSMTPSender builds a sender from a TransportConfig, the resolved
//     set of connection parameters for one dispatch.
//   - NewDevSender saves emails as timestamped .html/.json files for local
//     development where no SMTP server is available.
//
// All implementations validate parameters before sending and report failures
// through sentinel errors.
//
// # Usage
//
//	sender, err := email.NewSMTPSender(email.TransportConfig{
//	    Host:     "smtp.example.com",
//	    Port:     587,
//	    Username: "mailer@example.com",
//	    Password: "secret",
//	})
//	if err != nil {
//	    // handle configuration error
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    From:     "mailer@example.com",
//	    SendTo:   "reader@example.com",
//	    Subject:  "Hello",
//	    BodyHTML: htmlContent,
//	})
//
// # Configuration
//
// Config carries the process-wide fallback transport settings parsed from the
// environment. None of its fields are required: whether a usable transport
// exists is decided at dispatch time, not at startup.
//
// # Error Handling
//
// Sentinel errors support errors.Is checks:
//   - ErrInvalidConfig: transport configuration is incomplete
//   - ErrInvalidParams: message parameters failed validation
//   - ErrFailedToSendEmail: delivery failed
package email
