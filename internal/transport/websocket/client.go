package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type connection struct {
	conn   *websocket.Conn
	gameID string
	// WriteJSON is not safe for concurrent use
	writeMu sync.Mutex
}

// ConnectionManager tracks open sockets and the game each one is playing
type ConnectionManager struct {
	connections map[string]*connection
	mu          sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*connection),
	}
}

func (cm *ConnectionManager) AddConnection(connID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.connections[connID] = &connection{conn: conn}
}

// RemoveConnection closes the socket and returns the game it was bound to
func (cm *ConnectionManager) RemoveConnection(connID string) string {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	c, exists := cm.connections[connID]
	if !exists {
		return ""
	}
	c.conn.Close()
	delete(cm.connections, connID)
	return c.gameID
}

// BindGame attaches gameID to the connection and returns the one it replaces
func (cm *ConnectionManager) BindGame(connID, gameID string) string {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	c, exists := cm.connections[connID]
	if !exists {
		return ""
	}
	previous := c.gameID
	c.gameID = gameID
	return previous
}

func (cm *ConnectionManager) GameID(connID string) (string, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	c, exists := cm.connections[connID]
	if !exists || c.gameID == "" {
		return "", false
	}
	return c.gameID, true
}

func (cm *ConnectionManager) SendMessage(connID string, message ServerMessage) error {
	cm.mu.RLock()
	c, exists := cm.connections[connID]
	cm.mu.RUnlock()

	if !exists {
		return nil // Disconnected, ignore
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(message)
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}
