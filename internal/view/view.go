// Package view turns a game into the attributes of every control on the page.
// Render is a pure function of its inputs and is called after every change.
package view

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

// Cell carries everything a cell control displays.
type Cell struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Disabled bool   `json:"disabled"`
	Winning  bool   `json:"winning"`
	Label    string `json:"label"`
	Focused  bool   `json:"focused,omitempty"`
}

// Classes returns the css classes of the cell.
func (that Cell) Classes() string {
	classes := []string{"cell"}

	if that.Text != "" {
		classes = append(classes, "cell--"+strings.ToLower(that.Text))
	}
	if that.Winning {
		classes = append(classes, "cell--win")
	}
	if that.Disabled {
		classes = append(classes, "cell--disabled")
	}

	return strings.Join(classes, " ")
}

// Page is the rendered game.
type Page struct {
	Status    string `json:"status"`
	Outcome   string `json:"outcome"`
	MoveCount string `json:"move_count"`
	Finished  bool   `json:"finished"`
	Cells     []Cell `json:"cells"`
}

// Rows splits the cells into the three board rows.
func (that Page) Rows() [][]Cell {
	return lo.Chunk(that.Cells, 3)
}

// Render derives the page from game. focus is the cell that should get
// keyboard focus, or a negative value for none.
func Render(game entity.Game, focus int) Page {
	finished := game.IsFinished()

	cells := lo.Map(game.Board[:], func(mark entity.Mark, i int) Cell {
		return Cell{
			Index:    i,
			Text:     string(mark),
			Disabled: finished || !tictactoe.CanMove(game, i),
			Winning:  game.InWinningLine(i),
			Label:    cellLabel(i, mark),
			Focused:  i == focus,
		}
	})

	return Page{
		Status:    statusText(game),
		Outcome:   game.Status(),
		MoveCount: fmt.Sprintf("Moves: %d", game.MoveCount),
		Finished:  finished,
		Cells:     cells,
	}
}

func statusText(game entity.Game) string {
	switch game.Status() {
	case entity.StatusWon:
		return "Winner: " + string(game.Winner)
	case entity.StatusDrawn:
		return "Draw"
	default:
		return "Turn: " + string(game.Turn)
	}
}

// cellLabel is the accessible name: 1-based position and content.
func cellLabel(cell int, mark entity.Mark) string {
	content := string(mark)
	if mark.IsEmpty() {
		content = "empty"
	}

	return fmt.Sprintf("Cell %d, %s", cell+1, content)
}
