package contact

import "time"

// Config holds the contact module configuration. It is loaded once at
// startup and treated as immutable; the handler never reads ambient state.
type Config struct {
	// Subject is the fixed subject line on every dispatched message.
	Subject string `env:"CONTACT_SUBJECT" envDefault:"Website contact form submission"`

	// DefaultRecipient receives messages whose category has no dedicated mailbox.
	DefaultRecipient string `env:"CONTACT_DEFAULT_RECIPIENT,required"`

	// Recipients maps category codes to mailboxes, e.g.
	// "sales:sales@example.com,providers:purchasing@example.com".
	Recipients map[string]string `env:"CONTACT_RECIPIENTS" envSeparator:"," envKeyValSeparator:":"`

	// SuccessURL and FailureURL are the only two pages a submission can
	// resolve to. Both are static resources served elsewhere.
	SuccessURL string `env:"CONTACT_SUCCESS_URL" envDefault:"/contact_ok.html"`
	FailureURL string `env:"CONTACT_FAILURE_URL" envDefault:"/contact_error.html"`

	// MinScore is the verification confidence threshold for score-carrying
	// responses.
	MinScore float64 `env:"CONTACT_MIN_SCORE" envDefault:"0.5"`

	// MinFillTime and MaxFillTime bound the plausible time between the form
	// being rendered and submitted. Submissions outside the window are
	// logged as suspicious but not rejected.
	MinFillTime time.Duration `env:"CONTACT_MIN_FILL_TIME" envDefault:"1s"`
	MaxFillTime time.Duration `env:"CONTACT_MAX_FILL_TIME" envDefault:"24h"`
}
