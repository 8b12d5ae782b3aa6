package email

import "fmt"

// Driver selects the delivery transport.
type Driver string

const (
	DriverPostmark Driver = "postmark"
	DriverSMTP     Driver = "smtp"
	DriverDev      Driver = "dev"
)

// Config holds email transport configuration. SenderEmail is always required
// as it establishes the identity on outbound messages; the remaining fields
// are transport-specific and validated by the chosen sender.
type Config struct {
	Driver      Driver `env:"EMAIL_DRIVER" envDefault:"smtp"`
	SenderEmail string `env:"SENDER_EMAIL,required"`

	// Postmark transport
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	// SMTP transport (local MTA or relay)
	SMTPHost     string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"25"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// Dev transport
	DevOutputDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// New builds the sender matching the configured driver.
func New(cfg Config) (Sender, error) {
	switch cfg.Driver {
	case DriverPostmark:
		return NewPostmarkSender(cfg)
	case DriverSMTP:
		return NewSMTPSender(cfg)
	case DriverDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown email driver %q", ErrInvalidConfig, cfg.Driver)
	}
}
