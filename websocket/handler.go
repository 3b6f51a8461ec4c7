package websocket

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/SnakeArena/internal/player"
	"github.com/thesrcielos/SnakeArena/websocket/message"
	"github.com/thesrcielos/SnakeArena/websocket/router"
	"github.com/thesrcielos/SnakeArena/websocket/state"
	"github.com/thesrcielos/SnakeArena/websocket/transport"
	"go.uber.org/zap"
)

const SnapshotMessage = "PLAYERS_SNAPSHOT"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type SpectatorHandler struct {
	players *player.Service
	router  *router.Router
	log     *zap.SugaredLogger
}

func NewSpectatorHandler(players *player.Service, log *zap.SugaredLogger) *SpectatorHandler {
	h := &SpectatorHandler{players: players, router: router.New(log), log: log}
	h.router.Handle(message.SnapshotRequest, h.handleSnapshotRequest)
	h.router.Handle(message.Ping, h.handlePing)
	return h
}

// Spectate upgrades the request, sends the current active players and then
// streams player events until the client goes away.
func (h *SpectatorHandler) Spectate(c echo.Context) error {
	active, err := h.players.List(c.Request().Context())
	if err != nil {
		return err
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return nil
	}

	id := uuid.NewString()
	spectator := state.RegisterSpectator(id, ws)
	h.log.Debugw("spectator connected", "spectator", id)

	if err := transport.SendToSpectator(spectator, transport.OutgoingMessage{
		Type:    SnapshotMessage,
		Payload: active,
	}); err != nil {
		h.log.Debugw("error sending snapshot", "spectator", id, "error", err)
	}

	go listenSpectator(id, ws, h.router, h.log)
	return nil
}

// Forward relays a player event to every spectator connected to this instance.
func (h *SpectatorHandler) Forward(event player.Event) {
	transport.Broadcast(h.log, transport.OutgoingMessage{
		Type:    event.Type,
		Payload: event.Player,
	})
}

func (h *SpectatorHandler) handleSnapshotRequest(spectatorID string, _ message.Message) {
	s := state.GetSpectator(spectatorID)
	if s == nil {
		return
	}
	active, err := h.players.List(context.Background())
	if err != nil {
		h.log.Errorw("error listing active players", "spectator", spectatorID, "error", err)
		return
	}
	if err := transport.SendToSpectator(s, transport.OutgoingMessage{Type: SnapshotMessage, Payload: active}); err != nil {
		h.log.Debugw("error sending snapshot", "spectator", spectatorID, "error", err)
	}
}

func (h *SpectatorHandler) handlePing(spectatorID string, _ message.Message) {
	s := state.GetSpectator(spectatorID)
	if s == nil {
		return
	}
	if err := transport.SendToSpectator(s, transport.OutgoingMessage{Type: message.Pong}); err != nil {
		h.log.Debugw("error sending pong", "spectator", spectatorID, "error", err)
	}
}
