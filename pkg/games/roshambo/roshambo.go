// Package roshambo implements rock-paper-scissors on the engine. Both
// players lock in a choice before the host is created; the run counts
// down to the reveal, announces the result, and returns the outcome.
package roshambo

import (
	"fmt"

	"github.com/turnwheel/turnwheel/pkg/engine"
)

// Choice is a throw in a game of rock-paper-scissors.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// ParseChoice parses a choice name, case-sensitively matching the
// lowercase forms "rock", "paper" and "scissors".
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	default:
		return Rock, fmt.Errorf("unknown choice: %s", s)
	}
}

// Beats reports whether c wins against other under the cyclic rule.
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	default:
		return false
	}
}

// Msg is an event emitted during a game.
type Msg string

// Outcome is the result of a finished game, always relative to player 1.
type Outcome int

const (
	// Tie means both players picked the same choice.
	Tie Outcome = iota
	// Win means player 1's choice beats player 2's.
	Win
	// Loss means player 2's choice beats player 1's.
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// Game holds both players' choices.
type Game struct {
	Player1 Choice
	Player2 Choice
}

// Rules implements the engine capability for rock-paper-scissors. The
// driver's inputs carry no information; every resume just advances the
// countdown.
type Rules struct {
	engine.NopEventHandler[Game, Msg]
}

func (Rules) Play(ctx *engine.Context[Game, Msg, struct{}, Outcome]) Outcome {
	// Count down to the reveal of both choices.
	ctx.YieldEvent("Ro!")
	ctx.YieldEvent("Sham!")
	ctx.YieldEvent("Bo!")

	// Assess the winner.
	game := ctx.Host.Game()
	var outcome Outcome
	var msg Msg
	switch {
	case game.Player1 == game.Player2:
		outcome = Tie
		msg = Msg(fmt.Sprintf("%s ties with %s.", game.Player1, game.Player2))
	case game.Player1.Beats(game.Player2):
		outcome = Win
		msg = Msg(fmt.Sprintf("%s beats %s.", game.Player1, game.Player2))
	default:
		outcome = Loss
		msg = Msg(fmt.Sprintf("%s beats %s.", game.Player2, game.Player1))
	}

	// Tell the player what happened.
	ctx.YieldEvent(msg)

	return outcome
}

// NewHost creates a host for a game with both choices locked in.
func NewHost(game Game) *engine.Host[Game, Msg, struct{}, Outcome] {
	return engine.NewHost[Game, Msg, struct{}, Outcome](Rules{}, game)
}
