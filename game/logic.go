package game

import "htmx-tictactoe/models"

// Lines lists every winning line in the order they are checked: rows,
// columns, then the two diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ComputeWinner returns the first completed line, or nil if there is none
func ComputeWinner(board models.Board) *models.WinResult {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != models.Empty && a == b && b == c {
			return &models.WinResult{Symbol: a, Line: line}
		}
	}
	return nil
}

// IsBoardFull checks if all cells on the board are filled
func IsBoardFull(board models.Board) bool {
	for _, square := range board {
		if square == models.Empty {
			return false
		}
	}
	return true
}

// IsDraw returns true if the board is full and nobody completed a line
func IsDraw(board models.Board) bool {
	return IsBoardFull(board) && ComputeWinner(board) == nil
}

// NextSymbol returns the symbol placed by the move after cursor.
func NextSymbol(cursor int) models.Square {
	if cursor%2 == 0 {
		return models.X
	}
	return models.O
}
