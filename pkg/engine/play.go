package engine

// Rules defines a game that can be run by a Host. G is the game state,
// E the event type yielded at each suspension, I the input supplied on
// each resume, and O the outcome returned when the run completes.
// Implementations hold no game state of their own; state lives in the
// Host and is reached through Context transactions.
type Rules[G, E, I, O any] interface {
	// Play runs the entire game. Think of this as the main function of
	// the game: it alternates between updating state and calling
	// Context.YieldEvent to hand an event to the driver and wait for the
	// next input. It must suspend only via the Context's yield methods.
	Play(ctx *Context[G, E, I, O]) O

	// HandleEvent lets the game react to (and mutate) an event before it
	// reaches the driver. It is called with exclusive access to the game
	// state, both from inside YieldEvent and from direct calls to
	// Host.ProcessEvent. It must return promptly and must not suspend.
	HandleEvent(game *G, event *E)
}

// NopEventHandler provides a no-op HandleEvent. Games that do not react
// to their own events can embed it to satisfy Rules.
type NopEventHandler[G, E any] struct{}

func (NopEventHandler[G, E]) HandleEvent(*G, *E) {}
