package game

import "htmx-tictactoe/models"

// StatusText returns the line shown above the board.
func StatusText(xIsNext bool, winner *models.WinResult) string {
	if winner != nil {
		return "Winner: " + string(winner.Symbol)
	}
	if xIsNext {
		return "Next player: " + string(models.X)
	}
	return "Next player: " + string(models.O)
}

// RenderBoard lays out the board in row-major order. A cell is clickable only
// when it is empty and nobody has won, which is the same rule Play enforces.
func RenderBoard(board models.Board, xIsNext bool, winner *models.WinResult) models.BoardView {
	view := models.BoardView{Status: StatusText(xIsNext, winner)}

	winning := make(map[int]bool, 3)
	if winner != nil {
		for _, i := range winner.Line {
			winning[i] = true
		}
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			view.Rows[row][col] = models.CellView{
				Index:     i,
				Value:     board[i],
				Winning:   winning[i],
				Clickable: board[i] == models.Empty && winner == nil,
			}
		}
	}

	return view
}

// RenderState renders the board the cursor points at.
func RenderState(state *models.GameState) models.BoardView {
	return RenderBoard(CurrentBoard(state), IsXNext(state), Winner(state))
}
