package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/bitboardgames/tictacgo/internal/app"
	"github.com/bitboardgames/tictacgo/internal/engine"
)

// statePayload is the JSON document pushed to websocket clients after
// every state change.
type statePayload struct {
	Cells  []string `json:"cells"`
	Reply  int      `json:"reply"`
	Over   bool     `json:"over"`
	Status string   `json:"status"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func statePayloadFor(gs app.GameState) statePayload {
	cells := make([]string, engine.Length)
	for i := range cells {
		cells[i] = string(gs.Board.Mark(i))
	}
	return statePayload{
		Cells:  cells,
		Reply:  gs.Reply,
		Over:   gs.Over(),
		Status: statusLine(gs),
	}
}

// ws streams the game state as JSON over a websocket: one snapshot on
// connect, then one message per state change. The subscriber channel is
// used only as a change signal; the payload is re-read from the service
// so websocket clients get JSON rather than the SSE HTML fragment.
func (h *handlers) ws(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.svc.Get(id); !ok {
		http.NotFound(w, r)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	ch, unsub := h.svc.Subscribe(ctx, id)
	defer unsub()

	// Drain the connection to surface client closes.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if gs, ok := h.svc.Get(id); ok {
		if err := conn.WriteJSON(statePayloadFor(*gs)); err != nil {
			return
		}
	}
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			gs, ok := h.svc.Get(id)
			if !ok {
				return
			}
			if err := conn.WriteJSON(statePayloadFor(*gs)); err != nil {
				return
			}
		}
	}
}
