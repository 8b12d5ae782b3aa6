package contact

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contactform/pkg/binder"
	"github.com/dmitrymomot/contactform/pkg/clientip"
)

// Handler is the HTTP boundary of the module. It is the only place that
// maps pipeline outcomes to redirects; the client always lands on one of
// exactly two static pages regardless of what went wrong.
type Handler struct {
	svc  *Service
	cfg  Config
	log  *slog.Logger
	bind func(r *http.Request, v any) error
}

// NewHandler creates the submission handler.
func NewHandler(svc *Service, cfg Config, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		svc:  svc,
		cfg:  cfg,
		log:  log,
		bind: binder.Form(),
	}
}

// Submit handles a form POST. It never writes error details to the client.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var sub Submission
	if err := h.bind(r, &sub); err != nil {
		h.log.InfoContext(ctx, "failed to parse submission form", "error", err)
		h.redirect(w, r, h.cfg.FailureURL)
		return
	}

	meta := RequestMeta{
		ClientIP:  clientip.FromContext(ctx),
		Referer:   r.Referer(),
		UserAgent: r.UserAgent(),
	}

	if err := h.svc.Process(ctx, sub, meta); err != nil {
		h.redirect(w, r, h.cfg.FailureURL)
		return
	}

	h.redirect(w, r, h.cfg.SuccessURL)
}

// MethodNotAllowed rejects anything that is not the form POST with the same
// failure redirect, disclosing nothing about why.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.log.InfoContext(r.Context(), "submission rejected: method not allowed", "method", r.Method)
	h.redirect(w, r, h.cfg.FailureURL)
}

// redirect sends the browser to one of the two configured outcome pages.
// Any other target is coerced to the failure page; outcome redirects must
// never become caller-controlled.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	if target != h.cfg.SuccessURL && target != h.cfg.FailureURL {
		h.log.WarnContext(r.Context(), "attempted redirect to non-whitelisted page", "target", target)
		target = h.cfg.FailureURL
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
