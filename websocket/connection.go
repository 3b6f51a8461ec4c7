package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/thesrcielos/SnakeArena/websocket/message"
	"github.com/thesrcielos/SnakeArena/websocket/router"
	"github.com/thesrcielos/SnakeArena/websocket/state"
	"go.uber.org/zap"
)

// listenSpectator routes client frames until the connection fails, then
// unregisters the spectator.
func listenSpectator(id string, conn *websocket.Conn, r *router.Router, log *zap.SugaredLogger) {
	defer func() {
		log.Debugw("spectator disconnected", "spectator", id)
		state.UnregisterSpectator(id)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg message.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debugw("invalid spectator message", "spectator", id, "error", err)
			continue
		}
		r.RouteMessage(id, msg)
	}
}
