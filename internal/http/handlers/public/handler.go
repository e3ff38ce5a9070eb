package public

import "github.com/civeni/civeni-api/internal/provider"

// Handler serves the participant-facing API: events, certificates,
// registrations, work submissions and content listings.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
