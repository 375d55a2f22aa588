package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnwheel/turnwheel/pkg/engine"
)

// drive runs a fresh game through the supplied moves and returns the
// yielded events, the outcome, and the host for state inspection.
func drive(t *testing.T, moves []Pos) ([]Event, Outcome, *engine.Host[Game, Event, Pos, Outcome]) {
	t.Helper()

	host := NewHost(NewGame())
	co, err := host.Play()
	require.NoError(t, err)

	// The first resume starts the run; its input is discarded.
	turn, err := co.Resume(Pos{})
	require.NoError(t, err)
	events := []Event{turn.Event}

	for _, move := range moves {
		turn, err = co.Resume(move)
		require.NoError(t, err)
		if turn.Done {
			return events, turn.Outcome, host
		}
		events = append(events, turn.Event)
	}

	t.Fatal("game did not finish")
	return nil, Outcome{}, nil
}

func TestTicTacToeXWinsRow(t *testing.T) {
	moves := []Pos{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{2, 0},
	}
	events, outcome, host := drive(t, moves)

	wantNext := []Player{X, O, X, O, X}
	require.Len(t, events, len(wantNext))
	for i, event := range events {
		assert.False(t, event.Rejected)
		assert.Equal(t, wantNext[i], event.Next)
	}

	assert.Equal(t, Outcome{Winner: X, Line: Line{Kind: LineRow, Index: 0}}, outcome)

	// The outcome is also written back into the shared game state.
	game := host.Game()
	require.NotNil(t, game.Outcome)
	assert.Equal(t, outcome, *game.Outcome)
}

func TestTicTacToeOWinsColumn(t *testing.T) {
	moves := []Pos{
		{0, 0}, {2, 0},
		{1, 0}, {2, 1},
		{0, 1}, {2, 2},
	}
	_, outcome, _ := drive(t, moves)
	assert.Equal(t, Outcome{Winner: O, Line: Line{Kind: LineCol, Index: 2}}, outcome)
}

func TestTicTacToeXWinsDiagonal(t *testing.T) {
	moves := []Pos{
		{0, 0}, {1, 0},
		{1, 1}, {2, 0},
		{2, 2},
	}
	_, outcome, _ := drive(t, moves)
	assert.Equal(t, Outcome{Winner: X, Line: Line{Kind: LineDiagonal}}, outcome)
}

func TestTicTacToeDraw(t *testing.T) {
	moves := []Pos{
		{0, 0}, {1, 0},
		{2, 0}, {1, 1},
		{0, 1}, {2, 1},
		{1, 2}, {0, 2},
		{2, 2},
	}
	_, outcome, host := drive(t, moves)
	assert.Equal(t, None, outcome.Winner)
	assert.Equal(t, "Draw", outcome.String())

	game := host.Game()
	for _, tile := range game.Board {
		assert.NotEqual(t, None, tile)
	}
}

func TestTicTacToeRejectsInvalidMoves(t *testing.T) {
	host := NewHost(NewGame())
	co, err := host.Play()
	require.NoError(t, err)

	turn, err := co.Resume(Pos{})
	require.NoError(t, err)
	assert.Equal(t, Event{Next: X}, turn.Event)

	turn, err = co.Resume(Pos{Col: 0, Row: 0})
	require.NoError(t, err)
	assert.Equal(t, Event{Next: O}, turn.Event)

	// Occupied tile: the move is rejected without consuming the turn.
	turn, err = co.Resume(Pos{Col: 0, Row: 0})
	require.NoError(t, err)
	assert.True(t, turn.Event.Rejected)
	assert.Equal(t, O, host.Game().Current)

	// Out of bounds is rejected the same way.
	turn, err = co.Resume(Pos{Col: 5, Row: 0})
	require.NoError(t, err)
	assert.True(t, turn.Event.Rejected)

	turn, err = co.Resume(Pos{Col: 1, Row: 1})
	require.NoError(t, err)
	assert.Equal(t, Event{Next: X}, turn.Event)
	assert.Equal(t, O, host.Game().Tile(Pos{Col: 1, Row: 1}))
}

func TestNewPosBounds(t *testing.T) {
	tests := []struct {
		name    string
		col     int
		row     int
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"far corner", 2, 2, false},
		{"column too big", 3, 0, true},
		{"row too big", 0, 3, true},
		{"negative", -1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPos(tt.col, tt.row)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMove)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLinePositions(t *testing.T) {
	row := Line{Kind: LineRow, Index: 1}
	assert.Equal(t, []Pos{{0, 1}, {1, 1}, {2, 1}}, row.Positions())
	assert.True(t, row.Contains(Pos{Col: 2, Row: 1}))
	assert.False(t, row.Contains(Pos{Col: 2, Row: 2}))

	flipped := Line{Kind: LineDiagonal, Flipped: true}
	assert.Equal(t, []Pos{{0, 2}, {1, 1}, {2, 0}}, flipped.Positions())
}
