// Package tictactoe implements tic-tac-toe on the engine. The run
// yields an event before every move naming the player expected to act,
// resumes with a board position, and ends when a player owns a full
// line or the board fills up.
package tictactoe

import (
	"errors"
	"fmt"

	"github.com/turnwheel/turnwheel/pkg/engine"
)

// BoardSize is the width and height, in tiles, of the square board.
const BoardSize = 3

// ErrInvalidMove is reported when a move would not make sense, e.g.
// when a player tries to take an occupied or out-of-bounds tile.
var ErrInvalidMove = errors.New("invalid move")

// Player identifies a player or the piece they place. The zero value
// None marks an empty tile.
type Player int

const (
	None Player = iota
	X
	O
)

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// next returns the player who moves after p.
func (p Player) next() Player {
	if p == X {
		return O
	}
	return X
}

// Pos is a column/row position on the board.
type Pos struct {
	Col int
	Row int
}

// NewPos validates a column/row pair against the board bounds.
func NewPos(col, row int) (Pos, error) {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return Pos{}, ErrInvalidMove
	}
	return Pos{Col: col, Row: row}, nil
}

func (p Pos) index() int {
	return p.Row*BoardSize + p.Col
}

// LineKind distinguishes the three shapes a winning line can take.
type LineKind int

const (
	LineRow LineKind = iota
	LineCol
	LineDiagonal
)

// Line is a straight line across the board. Index selects the row or
// column; Flipped selects the diagonal starting at the bottom-left
// corner instead of the top-left.
type Line struct {
	Kind    LineKind
	Index   int
	Flipped bool
}

// Positions returns every position on the line, in order.
func (l Line) Positions() []Pos {
	positions := make([]Pos, BoardSize)
	for i := range positions {
		switch l.Kind {
		case LineRow:
			positions[i] = Pos{Col: i, Row: l.Index}
		case LineCol:
			positions[i] = Pos{Col: l.Index, Row: i}
		case LineDiagonal:
			row := i
			if l.Flipped {
				row = BoardSize - 1 - i
			}
			positions[i] = Pos{Col: i, Row: row}
		}
	}
	return positions
}

// Contains reports whether pos lies on the line.
func (l Line) Contains(pos Pos) bool {
	for _, p := range l.Positions() {
		if p == pos {
			return true
		}
	}
	return false
}

func allLines() []Line {
	lines := make([]Line, 0, 2*BoardSize+2)
	for i := 0; i < BoardSize; i++ {
		lines = append(lines, Line{Kind: LineRow, Index: i}, Line{Kind: LineCol, Index: i})
	}
	return append(lines, Line{Kind: LineDiagonal}, Line{Kind: LineDiagonal, Flipped: true})
}

// Outcome is the result of a finished game. A draw leaves Winner set to
// None; otherwise Line is the winning line.
type Outcome struct {
	Winner Player
	Line   Line
}

func (o Outcome) String() string {
	if o.Winner == None {
		return "Draw"
	}
	return fmt.Sprintf("%s wins", o.Winner)
}

// Event is yielded before every move. Next names the player expected to
// act; Rejected is true when the previous input was an invalid move, in
// which case the same player must act again.
type Event struct {
	Next     Player
	Rejected bool
}

// Game is the board state. X moves first.
type Game struct {
	Current Player
	Board   [BoardSize * BoardSize]Player
	Outcome *Outcome
}

func NewGame() Game {
	return Game{Current: X}
}

// Tile returns the owner of the tile at pos, or None.
func (g Game) Tile(pos Pos) Player {
	return g.Board[pos.index()]
}

// TakeTurn claims the tile at pos for the current player and passes the
// turn. Returns ErrInvalidMove if the tile is already claimed.
func (g *Game) TakeTurn(pos Pos) error {
	if _, err := NewPos(pos.Col, pos.Row); err != nil {
		return err
	}
	if g.Board[pos.index()] != None {
		return ErrInvalidMove
	}
	g.Board[pos.index()] = g.Current
	g.Current = g.Current.next()
	return nil
}

// checkOutcome scans for a finished game: a fully-owned line wins, a
// full board with no winner is a draw, and nil means play continues.
func (g Game) checkOutcome() *Outcome {
	for _, line := range allLines() {
		if owner := g.lineOwner(line); owner != None {
			return &Outcome{Winner: owner, Line: line}
		}
	}
	for _, tile := range g.Board {
		if tile == None {
			return nil
		}
	}
	return &Outcome{}
}

// lineOwner returns the player owning every tile on the line, or None.
func (g Game) lineOwner(line Line) Player {
	owner := None
	for _, pos := range line.Positions() {
		tile := g.Board[pos.index()]
		if tile == None || (owner != None && tile != owner) {
			return None
		}
		owner = tile
	}
	return owner
}

// Rules implements the engine capability for tic-tac-toe.
type Rules struct {
	engine.NopEventHandler[Game, Event]
}

func (Rules) Play(ctx *engine.Context[Game, Event, Pos, Outcome]) Outcome {
	rejected := false

	for {
		event := Event{Rejected: rejected}
		if !rejected {
			ref := ctx.Host.BorrowGame()
			event.Next = ref.Game().Current
			ref.Release()
		}

		// Wait for the player to supply a position to claim.
		pos := ctx.YieldEvent(event)

		mut := ctx.Host.BorrowGameMut()
		err := mut.Game().TakeTurn(pos)
		mut.Release()
		if err != nil {
			rejected = true
			continue
		}
		rejected = false

		outcome := engine.With(ctx.Host, func(game Game) *Outcome {
			return game.checkOutcome()
		})
		if outcome != nil {
			ctx.Host.WithGameMut(func(game *Game) {
				game.Outcome = outcome
			})
			return *outcome
		}
	}
}

// NewHost creates a host for a fresh board.
func NewHost(game Game) *engine.Host[Game, Event, Pos, Outcome] {
	return engine.NewHost[Game, Event, Pos, Outcome](Rules{}, game)
}
