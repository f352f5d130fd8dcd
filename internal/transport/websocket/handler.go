package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mshenoda/connect4/internal/service/game"
	"github.com/mshenoda/connect4/pkg/uid"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler serves interactive games over a websocket
type Handler struct {
	ConnManager       *ConnectionManager
	SessionManager    *game.SessionManager
	DefaultDifficulty string
	Upgrader          websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, defaultDifficulty string, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:       cm,
		SessionManager:    sm,
		DefaultDifficulty: defaultDifficulty,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == origin {
				return true
			}
		}
		log.Printf("[WS] Rejected origin %s", origin)
		return false
	}
}

func (h *Handler) Gin(c *gin.Context) {
	h.HandleWebSocket(c.Writer, c.Request)
}

// HandleWebSocket upgrades the request and runs the read loop until the
// client goes away.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	connID, err := uid.GenerateConnectionID()
	if err != nil {
		log.Printf("[WS] %v", err)
		conn.Close()
		return
	}
	h.ConnManager.AddConnection(connID, conn)
	h.handleConnection(connID, conn)
}

func (h *Handler) handleConnection(connID string, conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	go h.keepAlive(connID, conn, done)

	defer func() {
		close(done)
		if gameID := h.ConnManager.RemoveConnection(connID); gameID != "" {
			h.SessionManager.RemoveSession(gameID)
		}
		log.Printf("[WS] Connection %s closed", connID)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Connection %s dropped: %v", connID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(connID, "Invalid message format")
			continue
		}
		h.processMessage(connID, msg)
	}
}

func (h *Handler) keepAlive(connID string, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
				return
			}
		}
	}
}

func (h *Handler) processMessage(connID string, msg ClientMessage) {
	switch msg.Type {
	case MsgNewGame:
		difficulty := msg.Difficulty
		if difficulty == "" {
			difficulty = h.DefaultDifficulty
		}
		humanFirst := true
		if msg.HumanFirst != nil {
			humanFirst = *msg.HumanFirst
		}

		snap := h.SessionManager.CreateSession(difficulty, humanFirst)
		// A connection plays one game at a time
		if previous := h.ConnManager.BindGame(connID, snap.GameID); previous != "" {
			h.SessionManager.RemoveSession(previous)
		}
		h.sendState(connID, snap)

	case MsgMove:
		gameID, ok := h.ConnManager.GameID(connID)
		if !ok {
			h.sendError(connID, "No game in progress")
			return
		}
		if msg.Column == nil {
			h.sendError(connID, "column is required")
			return
		}
		snap, err := h.SessionManager.PlayMove(gameID, *msg.Column)
		if err != nil {
			h.sendError(connID, err.Error())
			return
		}
		h.sendState(connID, snap)

	case MsgLeave:
		if previous := h.ConnManager.BindGame(connID, ""); previous != "" {
			h.SessionManager.RemoveSession(previous)
		}

	default:
		h.sendError(connID, "Unknown message type")
	}
}

func (h *Handler) sendState(connID string, snap game.Snapshot) {
	if err := h.ConnManager.SendMessage(connID, ServerMessage{Type: MsgState, State: &snap}); err != nil {
		log.Printf("[WS] Send to %s failed: %v", connID, err)
	}
}

func (h *Handler) sendError(connID, message string) {
	if err := h.ConnManager.SendMessage(connID, ServerMessage{Type: MsgError, Message: message}); err != nil {
		log.Printf("[WS] Send to %s failed: %v", connID, err)
	}
}
