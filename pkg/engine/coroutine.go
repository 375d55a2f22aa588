package engine

import "runtime"

// Turn is the observable result of one resume of a run. While the run
// is in progress, Event carries the yielded event and Done is false.
// When the run completes, Done is true and Outcome carries the final
// result; Event is the zero value.
type Turn[E, O any] struct {
	Event   E
	Outcome O
	Done    bool
}

type step[E, O any] struct {
	event   E
	outcome O
	done    bool
}

// Coroutine is a suspendable game run. The turn body runs on a
// dedicated goroutine that alternates strictly with the driver: the
// body advances only while the driver is blocked inside Resume, so the
// two never touch the game state concurrently.
//
// Coroutine is not safe for use from multiple driver goroutines.
type Coroutine[E, I, O any] struct {
	body    func() O
	steps   chan step[E, O]
	inputs  chan I
	quit    chan struct{}
	started bool
	done    bool
}

// Resume advances the run until it yields the next event or returns its
// outcome. The first call starts the turn body; its input is discarded,
// since no suspension point is awaiting one yet. Every later input
// becomes the result of the yield the body is suspended on. Returns
// ErrRunCompleted if the run has already produced its outcome.
func (c *Coroutine[E, I, O]) Resume(input I) (Turn[E, O], error) {
	if c.done {
		return Turn[E, O]{}, ErrRunCompleted
	}

	if !c.started {
		c.started = true
		go func() {
			outcome := c.body()
			c.steps <- step[E, O]{outcome: outcome, done: true}
		}()
	} else {
		c.inputs <- input
	}

	st := <-c.steps
	if st.done {
		c.done = true
		return Turn[E, O]{Outcome: st.outcome, Done: true}, nil
	}
	return Turn[E, O]{Event: st.event}, nil
}

// Abandon discards an unfinished run, releasing the goroutine running
// the turn body. The body never observes this; it simply stops at its
// current suspension point. The game state is left however the run last
// left it and remains accessible through the Host. Abandoning a
// completed or never-started run is a no-op beyond marking it done.
func (c *Coroutine[E, I, O]) Abandon() {
	if c.done {
		return
	}
	c.done = true
	close(c.quit)
}

// yield hands an event to the driver and blocks until the next input is
// supplied. Called only from the body goroutine, via Context.
func (c *Coroutine[E, I, O]) yield(event E) I {
	c.steps <- step[E, O]{event: event}
	select {
	case input := <-c.inputs:
		return input
	case <-c.quit:
		runtime.Goexit()
		panic("unreachable")
	}
}
