package router

import (
	"github.com/thesrcielos/SnakeArena/websocket/message"
	"go.uber.org/zap"
)

type HandlerFunc func(spectatorID string, msg message.Message)

type Router struct {
	handlers map[string]HandlerFunc
	log      *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Router {
	return &Router{handlers: make(map[string]HandlerFunc), log: log}
}

// Handle must be called before the router starts serving messages.
func (r *Router) Handle(msgType string, handler HandlerFunc) {
	r.handlers[msgType] = handler
}

func (r *Router) RouteMessage(spectatorID string, msg message.Message) {
	if handler, ok := r.handlers[msg.Type]; ok {
		handler(spectatorID, msg)
	} else {
		r.log.Debugw("unknown message type", "spectator", spectatorID, "type", msg.Type)
	}
}
