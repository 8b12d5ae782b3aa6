// Package email provides a narrow plain-text email delivery abstraction with
// interchangeable transports.
//
// The Sender interface takes a validated Message (recipient, subject, body);
// implementations cover the Postmark transactional API, a plain SMTP relay
// or local MTA, and a development sender that writes messages to disk. The
// transport is selected through environment configuration:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//	sender, err := email.New(cfg)
//
// Senders never place unvalidated input into header lines; Message.Validate
// enforces the recipient address grammar and a single-line subject before a
// message is accepted.
package email
