package game

import (
	"testing"

	"htmx-tictactoe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardOf(cells string) models.Board {
	var board models.Board
	for i, r := range cells {
		switch r {
		case 'X':
			board[i] = models.X
		case 'O':
			board[i] = models.O
		}
	}
	return board
}

func TestComputeWinner(t *testing.T) {
	t.Run("Every line wins for both symbols", func(t *testing.T) {
		for _, line := range Lines {
			for _, symbol := range []models.Square{models.X, models.O} {
				var board models.Board
				for _, i := range line {
					board[i] = symbol
				}

				winner := ComputeWinner(board)
				require.NotNil(t, winner, "line %v", line)
				assert.Equal(t, symbol, winner.Symbol)
				assert.Equal(t, line, winner.Line)
			}
		}
	})

	t.Run("No winner on empty or mixed boards", func(t *testing.T) {
		assert.Nil(t, ComputeWinner(models.Board{}))
		assert.Nil(t, ComputeWinner(boardOf("XOX......")))
		assert.Nil(t, ComputeWinner(boardOf("XOXXOOOXX")))
	})

	t.Run("Rows are checked before columns", func(t *testing.T) {
		// X completes the top row and the left column at once
		winner := ComputeWinner(boardOf("XXXXOOXOO"))
		require.NotNil(t, winner)
		assert.Equal(t, [3]int{0, 1, 2}, winner.Line)
	})

	t.Run("Result iff some line is uniform", func(t *testing.T) {
		// Enumerate all 3^9 boards
		squares := []models.Square{models.Empty, models.X, models.O}
		for n := 0; n < 19683; n++ {
			var board models.Board
			v := n
			for i := range board {
				board[i] = squares[v%3]
				v /= 3
			}

			uniform := false
			for _, line := range Lines {
				a := board[line[0]]
				if a != models.Empty && a == board[line[1]] && a == board[line[2]] {
					uniform = true
					break
				}
			}

			winner := ComputeWinner(board)
			if !uniform {
				require.Nil(t, winner, "board %v", board)
				continue
			}
			require.NotNil(t, winner, "board %v", board)
			require.Contains(t, Lines[:], winner.Line)
			for _, i := range winner.Line {
				require.Equal(t, winner.Symbol, board[i])
			}
		}
	})
}

func TestIsBoardFullAndDraw(t *testing.T) {
	assert.False(t, IsBoardFull(models.Board{}))
	assert.False(t, IsBoardFull(boardOf("XOXXOOOX.")))
	assert.True(t, IsBoardFull(boardOf("XOXXOOOXX")))

	assert.True(t, IsDraw(boardOf("XOXXOOOXX")))
	assert.False(t, IsDraw(boardOf("XXXOOXOXO")), "a full board with a line is a win")
	assert.False(t, IsDraw(boardOf("XO.......")))
}

func TestNextSymbol(t *testing.T) {
	assert.Equal(t, models.X, NextSymbol(0))
	assert.Equal(t, models.O, NextSymbol(1))
	assert.Equal(t, models.X, NextSymbol(8))
}
