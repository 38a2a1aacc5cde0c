package usecase

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	t.Run("Cell activation moves and focuses the cell", func(t *testing.T) {
		// When: X activates cell 3
		game, focus := Update(entity.NewGame(), ActivateCell(3))

		// Then: the mark is placed and the cell keeps focus
		assert.Equal(t, entity.PlayerX, game.Board[3])
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, 3, focus)
	})

	t.Run("Out of range cell is ignored", func(t *testing.T) {
		// When: a cell outside the board is activated
		game, focus := Update(entity.NewGame(), ActivateCell(42))

		// Then: nothing happens
		assert.Equal(t, entity.NewGame(), game)
		assert.Equal(t, NoFocus, focus)
	})

	t.Run("Unknown action is ignored", func(t *testing.T) {
		// Given: a game with one move
		start, _ := Update(entity.NewGame(), ActivateCell(0))

		// When: an unknown action is dispatched
		game, focus := Update(start, Command{Action: "game:undo"})

		// Then: nothing happens
		assert.Equal(t, start, game)
		assert.Equal(t, NoFocus, focus)
		assert.False(t, Command{Action: "game:undo"}.IsKnown())
	})

	t.Run("Restart and new match both start over and focus the first cell", func(t *testing.T) {
		for _, cmd := range []Command{Restart(), NewMatch()} {
			// Given: a game won by X
			game := entity.NewGame()
			for _, cell := range []int{0, 3, 1, 4, 2} {
				game, _ = Update(game, ActivateCell(cell))
			}
			require.Equal(t, entity.PlayerX, game.Winner)

			// When: the reset command is dispatched
			game, focus := Update(game, cmd)

			// Then: the board is fresh and focus goes to the first cell
			assert.Equal(t, entity.NewGame(), game, cmd.Action)
			assert.Equal(t, 0, focus)
		}
	})
}
