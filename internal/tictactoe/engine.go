package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// WinningLine returns the first complete line in entity.WinCombos order.
func WinningLine(board entity.Board) (entity.Line, bool) {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return entity.Line{}, false
}

// Winner returns the mark that owns the winning line.
func Winner(board entity.Board) (entity.Mark, bool) {
	line, ok := WinningLine(board)
	if !ok {
		return entity.EmptyCell, false
	}

	return board[line[0]], true
}

// IsDraw - every cell is taken and nobody has three in a row.
func IsDraw(board entity.Board) bool {
	if !board.IsFull() {
		return false
	}

	_, won := Winner(board)
	return !won
}
