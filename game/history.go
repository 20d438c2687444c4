package game

import (
	"fmt"

	"htmx-tictactoe/models"
)

// RowColumn returns the 1-indexed grid position annotated next to move.
//
// The position comes from the move number alone and assumes moves fill the
// board in row-major order; it does not look at the cell actually played.
func RowColumn(move int) (row, col int) {
	return (move-1)/3 + 1, (move-1)%3 + 1
}

// MoveList builds one entry per history index in the state's sort order.
func MoveList(state *models.GameState) []models.MoveEntry {
	n := len(state.History)
	entries := make([]models.MoveEntry, 0, n)

	for i := 0; i < n; i++ {
		move := i
		if state.Sort == models.Descending {
			move = n - 1 - i
		}
		entries = append(entries, moveEntry(state, move))
	}

	return entries
}

func moveEntry(state *models.GameState, move int) models.MoveEntry {
	entry := models.MoveEntry{Move: move}

	if move > 0 {
		row, col := RowColumn(move)
		entry.RowCol = fmt.Sprintf(" (%d,%d)", row, col)
		entry.Description = fmt.Sprintf("Go to move #%d", move)
	} else {
		entry.Description = "Go to game start"
	}

	if move == state.Cursor {
		entry.IsCurrent = true
		if IsDraw(state.History[move]) {
			entry.Description = "Game Over! Draw"
		} else {
			entry.Description = fmt.Sprintf("You are at move #%d", move)
		}
	}

	return entry
}

// SortButtonLabel names the order the sort toggle switches to.
func SortButtonLabel(order models.SortOrder) string {
	if order == models.Descending {
		return "Sort ascending"
	}
	return "Sort descending"
}
