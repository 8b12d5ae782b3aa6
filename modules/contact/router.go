package contact

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

// Router mounts the submission endpoint with its request-scoped middleware.
// Only POST is routed; every other method falls through to the handler's
// failure redirect.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/contact", contact.Router(handler))
func Router(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)

	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Post("/", h.Submit)

	return r
}
