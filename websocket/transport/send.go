package transport

import (
	"github.com/thesrcielos/SnakeArena/websocket/state"
	"go.uber.org/zap"
)

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func SendToSpectator(s *state.Spectator, msg OutgoingMessage) error {
	s.ConnMu.Lock()
	defer s.ConnMu.Unlock()

	return s.Conn.WriteJSON(msg)
}

// Broadcast writes msg to every registered spectator. A failed write is
// logged and left for the read loop of that connection to clean up.
func Broadcast(log *zap.SugaredLogger, msg OutgoingMessage) {
	for _, s := range state.GetAllSpectators() {
		if err := SendToSpectator(s, msg); err != nil {
			log.Debugw("error sending message to spectator", "spectator", s.ID, "error", err)
		}
	}
}
