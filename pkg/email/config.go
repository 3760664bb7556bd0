package email

// Config holds the process-wide fallback mail settings.
//
// All fields are optional: the admin console can supply its own transport
// override, and whether any usable transport exists is resolved per dispatch
// rather than enforced at startup. A process with neither configured simply
// cannot announce.
type Config struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure   bool   `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SenderEmail  string `env:"SENDER_EMAIL"`
}

// Transport returns the fallback settings as a transport descriptor.
func (c Config) Transport() TransportConfig {
	return TransportConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Secure:   c.SMTPSecure,
		Username: c.SMTPUsername,
		Password: c.SMTPPassword,
	}
}
