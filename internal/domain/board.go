package domain

// Board is the raw grid. board[0] is the top row, board[Rows-1] the bottom.
type Board [][]PlayerID

func NewBoard() Board {
	board := make(Board, Rows)
	for i := range board {
		board[i] = make([]PlayerID, Columns)
	}
	return board
}

func (b Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// only the top cell matters, gravity keeps the rest of the column packed
	return b[0][column] == Empty
}

// NextOpenRow scans from the bottom row upward
func (b Board) NextOpenRow(column int) int {
	if column < 0 || column >= Columns {
		return NoRow
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row
		}
	}
	return NoRow
}

// DropDisk places the disk at the lowest empty row of the column
func (b Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= Columns {
		return NoRow, ErrInvalidMove
	}
	row := b.NextOpenRow(column)
	if row == NoRow {
		return NoRow, ErrColumnFull
	}
	b[row][column] = player
	return row, nil
}

func (b Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board
func (b Board) Copy() Board {
	newBoard := make(Board, len(b))
	for i := range b {
		newBoard[i] = make([]PlayerID, len(b[i]))
		copy(newBoard[i], b[i])
	}
	return newBoard
}

func (b Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// this counts the number of disks in a specific direction
func (b Board) CountDiskInDirection(row, column int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// Ints converts the grid for JSON payloads
func (b Board) Ints() [][]int {
	out := make([][]int, len(b))
	for i, row := range b {
		out[i] = make([]int, len(row))
		for j, cell := range row {
			out[i][j] = int(cell)
		}
	}
	return out
}
