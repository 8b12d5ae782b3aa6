package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Sender delivers a single plain-text email message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a plain-text email. The To address must be validated before the
// message reaches a sender; senders re-check it and refuse to build header
// lines from anything that fails the address grammar.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Validate checks that the message is deliverable: a syntactically valid
// recipient, a non-empty single-line subject, and a non-empty body.
func (m Message) Validate() error {
	if !validator.IsEmail(m.To) {
		return fmt.Errorf("%w: recipient %q is not a valid address", ErrInvalidMessage, m.To)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if strings.ContainsAny(m.Subject, "\r\n") {
		return fmt.Errorf("%w: subject must not contain line breaks", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	return nil
}
