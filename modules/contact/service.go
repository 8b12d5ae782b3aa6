package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/recaptcha"
	"github.com/dmitrymomot/contactform/pkg/sanitizer"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Service runs a submission through the validation and dispatch pipeline:
// spam gate, field sanitization, token verification, recipient routing and
// email dispatch. It holds no mutable state and is safe for concurrent use.
type Service struct {
	cfg       Config
	directory *Directory
	verifier  recaptcha.Verifier
	sender    email.Sender
	log       *slog.Logger
	now       func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamp plausibility
// checks. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the pipeline dependencies. The category directory is
// built from the config once; the verifier and sender are injected so tests
// can substitute deterministic fakes.
func NewService(cfg Config, verifier recaptcha.Verifier, sender email.Sender, log *slog.Logger, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}

	if cfg.MinFillTime <= 0 {
		cfg.MinFillTime = defaultMinFillTime
	}
	if cfg.MaxFillTime <= 0 {
		cfg.MaxFillTime = defaultMaxFillTime
	}

	s := &Service{
		cfg:       cfg,
		directory: NewDirectory(cfg.Recipients, cfg.DefaultRecipient),
		verifier:  verifier,
		sender:    sender,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process validates, gates and dispatches a single submission. It returns
// nil on successful dispatch, otherwise one of the package error kinds.
// Every failure is terminal; nothing is retried.
func (s *Service) Process(ctx context.Context, sub Submission, meta RequestMeta) error {
	// The honeypot bypasses everything else, including the verification
	// call: a tripped field is a bot, full stop.
	if honeypotTripped(sub.Honeypot) {
		s.log.WarnContext(ctx, "honeypot triggered, submission blocked", "ip", meta.ClientIP)
		return ErrBotDetected
	}

	if elapsed, suspicious := timestampSuspicious(sub.Timestamp, s.now(), s.cfg.MinFillTime, s.cfg.MaxFillTime); suspicious {
		// Detection signal only; the submission proceeds.
		s.log.WarnContext(ctx, "suspicious submission timestamp",
			"ip", meta.ClientIP,
			"elapsed", elapsed.String(),
		)
	}

	clean, injection, err := sanitizeSubmission(sub)
	if err != nil {
		if injection {
			s.log.WarnContext(ctx, "email header injection attempt detected",
				"ip", meta.ClientIP,
				"email", sanitizer.SingleLine(sanitizer.MaxLength(sub.Email, 50)),
			)
			return errors.Join(ErrSecurityViolation, err)
		}

		var verrs validator.ValidationErrors
		errors.As(err, &verrs)
		s.log.InfoContext(ctx, "submission validation failed",
			"ip", meta.ClientIP,
			"errors", verrs.Error(),
		)
		return errors.Join(ErrValidationFailed, err)
	}

	result, err := s.verifier.Verify(ctx, sub.Token, meta.ClientIP)
	if err != nil {
		s.log.ErrorContext(ctx, "verification service unreachable", "error", err)
		return errors.Join(ErrUpstreamUnavailable, err)
	}
	if !result.Success {
		s.log.WarnContext(ctx, "verification rejected submission",
			"ip", meta.ClientIP,
			"error_codes", result.Errors,
		)
		return ErrBotDetected
	}
	if result.ScoreBelow(s.cfg.MinScore) {
		s.log.WarnContext(ctx, "verification score below threshold",
			"ip", meta.ClientIP,
			"score", *result.Score,
		)
		return ErrBotDetected
	}

	recipient := s.directory.Resolve(clean.Category)
	if !validator.IsEmail(recipient) {
		s.log.ErrorContext(ctx, "invalid recipient for category",
			"category", clean.Category,
			"recipient", sanitizer.MaskEmail(recipient),
		)
		return ErrConfigurationError
	}

	msg := email.Message{
		To:      recipient,
		Subject: s.cfg.Subject,
		Body:    composeMessage(clean, meta),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to send contact email",
			"recipient", sanitizer.MaskEmail(recipient),
			"error", err,
		)
		return errors.Join(ErrDispatchFailed, err)
	}

	s.log.InfoContext(ctx, "contact form dispatched",
		"from", sanitizer.MaskEmail(clean.Email),
		"recipient", sanitizer.MaskEmail(recipient),
		"category", clean.Category,
	)
	return nil
}
