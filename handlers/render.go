package handlers

import (
	"fmt"
	"html"
	"strings"

	"htmx-tictactoe/game"
	"htmx-tictactoe/models"
)

const swapAttrs = `hx-target="#game" hx-swap="outerHTML"`

// renderGameHTML renders the #game fragment: board, move list and sort
// toggle. The output is a single line so it can travel as one SSE data field.
func renderGameHTML(state *models.GameState) string {
	var b strings.Builder

	b.WriteString(`<div id="game" class="game">`)
	b.WriteString(`<div class="game-board">`)
	b.WriteString(renderBoardHTML(game.RenderState(state)))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="game-info"><ol class="moves">`)
	for _, entry := range game.MoveList(state) {
		b.WriteString(renderMoveHTML(entry))
	}
	b.WriteString(`</ol></div>`)

	fmt.Fprintf(&b, `<div class="game-info"><button class="sort-button" hx-post="/api/game/sort" %s>%s</button></div>`,
		swapAttrs, html.EscapeString(game.SortButtonLabel(state.Sort)))

	b.WriteString(`</div>`)
	return b.String()
}

func renderBoardHTML(view models.BoardView) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="status">%s</div>`, html.EscapeString(view.Status))

	for _, row := range view.Rows {
		b.WriteString(`<div class="board-row">`)
		for _, cell := range row {
			class := "square"
			if cell.Winning {
				class += " win"
			}
			if cell.Clickable {
				fmt.Fprintf(&b, `<button class="%s" data-cell="%d" hx-post="/api/game/move/%d" %s>%s</button>`,
					class, cell.Index, cell.Index, swapAttrs, html.EscapeString(string(cell.Value)))
			} else {
				fmt.Fprintf(&b, `<button class="%s" data-cell="%d" disabled>%s</button>`,
					class, cell.Index, html.EscapeString(string(cell.Value)))
			}
		}
		b.WriteString(`</div>`)
	}

	return b.String()
}

func renderMoveHTML(entry models.MoveEntry) string {
	if entry.IsCurrent {
		return fmt.Sprintf(`<li><span class="current-move">%s</span>%s</li>`,
			html.EscapeString(entry.Description), html.EscapeString(entry.RowCol))
	}
	return fmt.Sprintf(`<li><button class="move-button" data-move="%d" hx-post="/api/game/jump/%d" %s>%s</button>%s</li>`,
		entry.Move, entry.Move, swapAttrs, html.EscapeString(entry.Description), html.EscapeString(entry.RowCol))
}
