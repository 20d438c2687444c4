package game

import (
	"errors"
	"fmt"
	"strconv"

	"htmx-tictactoe/models"
)

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMove = errors.New("invalid move index")
)

// NewGameState returns a game with a single empty board in ascending order.
func NewGameState() *models.GameState {
	return &models.GameState{
		History: []models.Board{{}},
		Cursor:  0,
		Sort:    models.Ascending,
	}
}

// CurrentBoard returns the board the cursor points at
func CurrentBoard(state *models.GameState) models.Board {
	return state.History[state.Cursor]
}

// IsXNext returns true if X places the next mark
func IsXNext(state *models.GameState) bool {
	return state.Cursor%2 == 0
}

// Winner returns the win on the current board, if any
func Winner(state *models.GameState) *models.WinResult {
	return ComputeWinner(CurrentBoard(state))
}

// Play places the next symbol on cell. Occupied cells, finished boards and
// out-of-range cells are ignored and leave state untouched; the return value
// reports whether a move was made.
//
// Any moves after the cursor are discarded. History is rebuilt rather than
// appended in place so earlier slices handed out keep their contents.
func Play(state *models.GameState, cell int) bool {
	if cell < 0 || cell >= len(models.Board{}) {
		return false
	}

	board := CurrentBoard(state)
	if board[cell] != models.Empty || ComputeWinner(board) != nil {
		return false
	}

	board[cell] = NextSymbol(state.Cursor)

	history := make([]models.Board, state.Cursor+1, state.Cursor+2)
	copy(history, state.History[:state.Cursor+1])
	history = append(history, board)

	state.History = history
	state.Cursor = len(history) - 1
	return true
}

// JumpTo moves the cursor to move. History is never altered. Out-of-range
// moves are ignored.
func JumpTo(state *models.GameState, move int) bool {
	if move < 0 || move >= len(state.History) {
		return false
	}
	state.Cursor = move
	return true
}

// ToggleSort flips the display order of the move list
func ToggleSort(state *models.GameState) {
	if state.Sort == models.Descending {
		state.Sort = models.Ascending
	} else {
		state.Sort = models.Descending
	}
}

// Reset starts a new game. The sort order is kept.
func Reset(state *models.GameState) {
	state.History = []models.Board{{}}
	state.Cursor = 0
}

// ParseCell converts a route parameter into a board index.
func ParseCell(raw string) (int, error) {
	cell, err := strconv.Atoi(raw)
	if err != nil || cell < 0 || cell >= len(models.Board{}) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCell, raw)
	}
	return cell, nil
}

// ParseMove converts a route parameter into a history index of state.
func ParseMove(state *models.GameState, raw string) (int, error) {
	move, err := strconv.Atoi(raw)
	if err != nil || move < 0 || move >= len(state.History) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, raw)
	}
	return move, nil
}
