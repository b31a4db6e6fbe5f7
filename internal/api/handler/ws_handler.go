package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobportel/job-board-api/internal/realtime"
)

// WSHandler upgrades HTTP requests to WebSocket connections and attaches them
// to the broadcast hub.
type WSHandler struct {
	hub *realtime.Hub
	log zerolog.Logger

	upgrader websocket.Upgrader
}

func NewWSHandler(hub *realtime.Hub, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from arbitrary origins; access control
			// happens on the API routes, the feed itself is public.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Subscribe handles GET /ws/jobs. The handler blocks reading the connection
// for its whole lifetime; the read loop's only job is to notice the peer
// going away so the hub can drop the subscriber promptly.
func (h *WSHandler) Subscribe(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	sub := h.hub.Subscribe(&wsConn{ws: ws})
	defer sub.Close()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// wsConn adapts a gorilla connection to the hub's Conn interface.
type wsConn struct {
	ws *websocket.Conn
}

func (c *wsConn) WriteMessage(data []byte) error {
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}
