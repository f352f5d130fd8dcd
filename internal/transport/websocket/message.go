package websocket

import "github.com/mshenoda/connect4/internal/service/game"

const (
	MsgNewGame = "new_game"
	MsgMove    = "move"
	MsgLeave   = "leave"

	MsgState = "state"
	MsgError = "error"
)

type ClientMessage struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	HumanFirst *bool  `json:"humanFirst,omitempty"`
	Column     *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type    string         `json:"type"`
	Message string         `json:"message,omitempty"`
	State   *game.Snapshot `json:"state,omitempty"`
}
