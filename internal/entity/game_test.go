package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("Ongoing when the board has room and nobody won", func(t *testing.T) {
		// Given: a game with one mark placed
		game := NewGame()
		game.Board[4] = PlayerX

		// Then: it is ongoing
		assert.Equal(t, StatusOngoing, game.Status())
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("Won when a winner is set", func(t *testing.T) {
		// Given: a game with a winner
		game := &Game{
			Board: Board{
				PlayerX, PlayerX, PlayerX,
				PlayerO, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			Winner:      PlayerX,
			WinningLine: &Line{0, 1, 2},
		}

		// Then: it is won and finished
		assert.Equal(t, StatusWon, game.Status())
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsDrawn())
	})

	t.Run("Drawn when the board is full without a winner", func(t *testing.T) {
		// Given: a full board
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
		}

		// Then: it is drawn
		assert.Equal(t, StatusDrawn, game.Status())
		assert.True(t, game.IsDrawn())
		assert.True(t, game.IsFinished())
	})
}

func TestGame_InWinningLine(t *testing.T) {
	t.Run("No line", func(t *testing.T) {
		game := NewGame()

		for cell := range BoardSize {
			assert.False(t, game.InWinningLine(cell))
		}
	})

	t.Run("Diagonal line", func(t *testing.T) {
		game := Game{WinningLine: &Line{2, 4, 6}}

		assert.True(t, game.InWinningLine(2))
		assert.True(t, game.InWinningLine(4))
		assert.True(t, game.InWinningLine(6))
		assert.False(t, game.InWinningLine(0))
		assert.False(t, game.InWinningLine(8))
	})
}

func TestBoard(t *testing.T) {
	t.Run("Filled counts non-empty cells", func(t *testing.T) {
		board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX}

		assert.Equal(t, 3, board.Filled())
		assert.False(t, board.IsFull())
	})

	t.Run("Cell outside the board is empty", func(t *testing.T) {
		board := Board{PlayerX, PlayerX, PlayerX, PlayerX, PlayerX, PlayerX, PlayerX, PlayerX, PlayerX}

		assert.Equal(t, EmptyCell, board.Cell(-1))
		assert.Equal(t, EmptyCell, board.Cell(BoardSize))
		assert.Equal(t, PlayerX, board.Cell(8))
		assert.True(t, board.IsFull())
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func drawnGame() Game {
	return Game{
		Board: Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		},
		Turn:      PlayerX,
		MoveCount: BoardSize,
	}
}

func TestGame_MethodsOnReturnedValues(t *testing.T) {
	// Then: status helpers work directly on a game returned by a call
	assert.True(t, drawnGame().IsDrawn())
	assert.True(t, drawnGame().IsFinished())
	assert.False(t, drawnGame().IsOngoing())
	assert.False(t, drawnGame().InWinningLine(4))
	assert.Equal(t, StatusDrawn, drawnGame().Status())
	assert.Equal(t, BoardSize, drawnGame().Board.Filled())
	assert.True(t, NewGame().IsOngoing())
}
