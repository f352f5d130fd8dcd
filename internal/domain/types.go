package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

const (
	// NoRow is returned by NextOpenRow for a full or out of range column
	NoRow = -1
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove     Error = "invalid move"
	ErrColumnFull      Error = "column is full"
	ErrGameOver        Error = "game is already over"
	ErrNotYourTurn     Error = "not your turn"
	ErrSessionNotFound Error = "session not found"
	ErrInvalidDepth    Error = "search depth must not be negative"
	ErrReportNotFound  Error = "report not found"
)
