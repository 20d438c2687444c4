package models

import (
	"context"
	"sync"
	"time"
)

type Square string

const (
	Empty Square = ""
	X     Square = "X"
	O     Square = "O"
)

// Board is a row-major snapshot of the 9 cells. It is a value type, so every
// copy is an independent snapshot.
type Board [9]Square

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// WinResult names the winning symbol and the line it completed.
type WinResult struct {
	Symbol Square `json:"symbol"`
	Line   [3]int `json:"line"`
}

type GameState struct {
	History []Board   `json:"history"` // index 0 is the empty board
	Cursor  int       `json:"cursor"`  // move currently being viewed
	Sort    SortOrder `json:"sort"`
}

// Session owns exactly one GameState for one browser session.
type Session struct {
	ID        string
	State     *GameState
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// Lock serialises the events of a session.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// MoveEntry is one line of the move list.
type MoveEntry struct {
	Move        int
	Description string // "Go to move #3", or the status text for the current entry
	RowCol      string // " (1,3)", empty for the game start
	IsCurrent   bool
}

type CellView struct {
	Index     int
	Value     Square
	Winning   bool
	Clickable bool
}

type BoardView struct {
	Status string
	Rows   [3][3]CellView
}

type GameEvent struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId"`
	Data      interface{} `json:"data"`
}

type GameSubscriber struct {
	ID        string
	SessionID string
	Channel   chan GameEvent
	Context   context.Context
}
