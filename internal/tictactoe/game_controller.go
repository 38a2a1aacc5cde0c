package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// ApplyMove places the current player's mark on cell and returns the new game.
// Moves on an occupied or out of range cell, or after the game is over, are
// ignored and the game is returned as is.
func ApplyMove(game entity.Game, cell int) entity.Game {
	if !CanMove(game, cell) {
		return game
	}

	game.Board[cell] = game.Turn
	game.MoveCount++
	updateGameStatus(&game)

	return game
}

// CanMove - checks if the current player may take cell.
func CanMove(game entity.Game, cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	if !game.Winner.IsEmpty() || IsDraw(game.Board) {
		return false
	}

	return game.Board[cell] == entity.EmptyCell
}

// Reset returns a fresh game.
// hard is reserved for per-match statistics and currently behaves like a soft reset.
func Reset(hard bool) entity.Game { //nolint: revive // hard has no effect yet
	return entity.NewGame()
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	if line, ok := WinningLine(game.Board); ok {
		game.Winner = game.Turn
		game.WinningLine = &line
		return
	}

	if IsDraw(game.Board) {
		return
	}

	game.Turn = toggleMark(game.Turn)
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	return currentMark.Opponent()
}
