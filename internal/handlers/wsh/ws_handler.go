// internal/handlers/wsh/ws_handler.go
package wsh

import (
	"net/http"

	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/pkg/response"
	"caseflow-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client runs on a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *ws.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// Connect upgrades an authenticated request and registers the client for
// inactivity alerts and reminder updates.
func (h *WSHandler) Connect(c *gin.Context) {
	act, ok := actor.FromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	ws.NewClient(h.hub, conn, act.ID).Register()
}
