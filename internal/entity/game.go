package entity

import (
	"github.com/samber/lo"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"

	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""

	BoardSize = 9
)

// WinCombos lists every winning line: rows, then columns, then diagonals.
// The order is part of the contract, WinningLine reports the first match.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark is the content of a cell: X, O or empty.
type Mark string

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// Board holds the 9 cells in row-major order.
type Board [BoardSize]Mark

// Line is a triple of cell indexes.
type Line [3]int

// Contains reports whether cell is part of the line.
func (that Line) Contains(cell int) bool {
	return lo.Contains(that[:], cell)
}

func (that Board) Cell(cell int) Mark {
	if !IsValidCell(cell) {
		return EmptyCell
	}
	return that[cell]
}

// Filled returns the number of non-empty cells.
func (that Board) Filled() int {
	return lo.CountBy(that[:], func(m Mark) bool {
		return !m.IsEmpty()
	})
}

func (that Board) IsFull() bool {
	return lo.EveryBy(that[:], func(m Mark) bool {
		return !m.IsEmpty()
	})
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Game is the complete state of one match.
type Game struct {
	Board       Board `json:"board"`
	Turn        Mark  `json:"player_turn"`
	Winner      Mark  `json:"winner,omitempty"`
	WinningLine *Line `json:"winning_line,omitempty"`
	MoveCount   int   `json:"move_count"`
}

func NewGame() Game {
	return Game{
		Board: Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:  PlayerX,
	}
}

// Status derives the match status from the winner and the board.
func (that Game) Status() string {
	switch {
	case !that.Winner.IsEmpty():
		return StatusWon
	case that.Board.IsFull():
		return StatusDrawn
	default:
		return StatusOngoing
	}
}

func (that Game) IsFinished() bool {
	return that.Status() != StatusOngoing
}

func (that Game) IsOngoing() bool {
	return that.Status() == StatusOngoing
}

func (that Game) IsDrawn() bool {
	return that.Status() == StatusDrawn
}

// InWinningLine reports whether cell belongs to the completed line, if any.
func (that Game) InWinningLine(cell int) bool {
	return that.WinningLine != nil && that.WinningLine.Contains(cell)
}
