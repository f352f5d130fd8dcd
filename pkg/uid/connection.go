package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateConnectionID identifies a websocket connection for its lifetime
func GenerateConnectionID() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate connection ID: %w", err)
	}
	return "conn-" + hex.EncodeToString(bytes), nil
}
