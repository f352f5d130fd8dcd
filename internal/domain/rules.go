package domain

// Window is a run of ToWin consecutive cells along one scan direction.
type Window [ToWin]PlayerID

// Count returns how many cells of the window hold the given value.
func (w Window) Count(p PlayerID) int {
	n := 0
	for _, cell := range w {
		if cell == p {
			n++
		}
	}
	return n
}

// scan directions as (deltaRow, deltaCol)
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{-1, 1}, // diagonal /
	{1, 1},  // diagonal \
}

// ForEachWindow calls fn for every horizontal, vertical, "/" and "\" window
// of the board.
func (b Board) ForEachWindow(fn func(w Window)) {
	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				endRow := row + dRow*(ToWin-1)
				endCol := col + dCol*(ToWin-1)
				if endRow < 0 || endRow >= Rows || endCol >= Columns {
					continue
				}
				var w Window
				for i := 0; i < ToWin; i++ {
					w[i] = b[row+dRow*i][col+dCol*i]
				}
				fn(w)
			}
		}
	}
}

// HasWinner rescans the whole board for a run of ToWin identical marks.
func (b Board) HasWinner() bool {
	found := false
	b.ForEachWindow(func(w Window) {
		if w[0] != Empty && w.Count(w[0]) == ToWin {
			found = true
		}
	})
	return found
}

// CheckWin only looks at lines passing through (row, column), which is
// enough after a single drop since no earlier line can exist in a live game.
func (b Board) CheckWin(row, column int) bool {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return false
	}
	player := b[row][column]
	if player == Empty {
		return false
	}

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		total := 1 +
			b.CountDiskInDirection(row, column, dRow, dCol, player) +
			b.CountDiskInDirection(row, column, -dRow, -dCol, player)
		if total >= ToWin {
			return true
		}
	}

	return false
}
