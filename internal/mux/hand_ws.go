package mux

import (
	"net/http"

	"github.com/gorilla/websocket"

	"pokersim-server/internal/game"
)

// wsMessage frames the stream a simulation websocket produces: one
// "event" message per audit entry, then a single "result" message.
type wsMessage struct {
	Type   string           `json:"type"`
	Event  *game.Event      `json:"event,omitempty"`
	Result *game.HandResult `json:"result,omitempty"`
}

// getHandSimulateWS upgrades the connection, reads one simulation request,
// and streams the hand's audit log followed by the final snapshot.
func (m *Mux) getHandSimulateWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := m.upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		var req game.SimulationRequest
		if err := conn.ReadJSON(&req); err != nil {
			_ = conn.WriteJSON(errorResponse{Error: err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			_ = conn.WriteJSON(errorResponse{Error: err.Error()})
			return
		}

		m.applyProfile(&req)
		result := game.Simulate(req.Config(), req.Actions, game.WithLogger(m.logger))

		for i := range result.Events {
			if err := conn.WriteJSON(wsMessage{Type: "event", Event: &result.Events[i]}); err != nil {
				m.logger.Debug("websocket write failed", "error", err)
				return
			}
		}

		// the snapshot itself omits the log; the stream already carried it
		final := *result
		final.Events = nil
		if err := conn.WriteJSON(wsMessage{Type: "result", Result: &final}); err != nil {
			m.logger.Debug("websocket write failed", "error", err)
		}

		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}
