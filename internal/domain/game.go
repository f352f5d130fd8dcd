package domain

// Game is the connect four state machine. It is only mutated via MakeMove;
// start a new game by creating a new Game.
type Game struct {
	board         Board
	players       [2]PlayerID
	currentPlayer PlayerID
	gameOver      bool
	moveCount     int
}

// NewGame registers the two player identities, first moves first.
func NewGame(first, second PlayerID) *Game {
	return &Game{
		board:         NewBoard(),
		players:       [2]PlayerID{first, second},
		currentPlayer: first,
	}
}

func (g *Game) IsValidMove(column int) bool {
	return g.board.IsValidMove(column)
}

func (g *Game) NextOpenRow(column int) int {
	return g.board.NextOpenRow(column)
}

// MakeMove drops the current player's disk in column. It does nothing and
// returns false when the game is over or the column can't take a disk.
// The winner stays as the current player.
func (g *Game) MakeMove(column int) (int, bool) {
	if g.gameOver || !g.IsValidMove(column) {
		return NoRow, false
	}

	row, err := g.board.DropDisk(column, g.currentPlayer)
	if err != nil {
		return NoRow, false
	}
	g.moveCount++

	if g.CheckWin(row, column) {
		g.gameOver = true
		return row, true
	}

	g.switchPlayers()
	return row, true
}

func (g *Game) CheckWin(row, column int) bool {
	return g.board.CheckWin(row, column)
}

func (g *Game) IsBoardFull() bool {
	return g.board.IsFull()
}

func (g *Game) ValidMoves() []int {
	return g.board.ValidMoves()
}

func (g *Game) switchPlayers() {
	g.currentPlayer = g.Opponent(g.currentPlayer)
}

// Opponent returns the other registered identity.
func (g *Game) Opponent(p PlayerID) PlayerID {
	if p == g.players[0] {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) CurrentPlayer() PlayerID { return g.currentPlayer }
func (g *Game) IsOver() bool            { return g.gameOver }
func (g *Game) MoveCount() int          { return g.moveCount }
func (g *Game) Players() [2]PlayerID    { return g.players }

func (g *Game) Cell(row, column int) PlayerID {
	return g.board[row][column]
}

// Grid returns a copy of the board
func (g *Game) Grid() Board {
	return g.board.Copy()
}

// Status is won once a line is formed, draw when the top row is full.
func (g *Game) Status() GameStatus {
	switch {
	case g.gameOver:
		return StatusWon
	case g.board.IsFull():
		return StatusDraw
	default:
		return StatusActive
	}
}

// Winner is Empty unless the game was won.
func (g *Game) Winner() PlayerID {
	if !g.gameOver {
		return Empty
	}
	return g.currentPlayer
}

// IsFinished reports a won or drawn game.
func (g *Game) IsFinished() bool {
	return g.gameOver || g.board.IsFull()
}

func (g *Game) Clone() *Game {
	clone := *g
	clone.board = g.board.Copy()
	return &clone
}

func (g *Game) ForEachWindow(fn func(w Window)) {
	g.board.ForEachWindow(fn)
}
