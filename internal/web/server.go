package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bitboardgames/tictacgo/internal/app"
)

// NewServer wires routes and returns an http.Handler. It also installs
// the board-fragment renderer on the service so SSE broadcasts carry
// ready-to-swap HTML.
func NewServer(s *app.Service) http.Handler {
	r := chi.NewRouter()
	h := &handlers{svc: s, tpl: loadTemplates()}
	s.SetRenderer(func(gs app.GameState) []byte { return h.renderBoard(gs, "") })
	r.Get("/", h.index)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/play", h.play)
		r.Post("/reset", h.reset)
		r.Get("/events", h.events)
		r.Get("/ws", h.ws)
	})
	return r
}
