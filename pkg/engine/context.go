package engine

// Context allows a running game to yield events to be processed by the
// driving application, and to read or write the game state through the
// shared Host. One Context is created per Play invocation and discarded
// when the run completes.
type Context[G, E, I, O any] struct {
	Host *Host[G, E, I, O]

	co *Coroutine[E, I, O]
}

// YieldEvent raises an event to be processed outside of the turn loop.
// The game itself gets the chance to react first via its HandleEvent
// hook, under its own write transaction; that transaction is fully
// released before the run suspends, so the driver is always free to
// open transactions while the run is paused. The possibly-mutated event
// is then handed to the driver and the run suspends until the driver
// supplies the next input, which becomes the return value.
func (c *Context[G, E, I, O]) YieldEvent(event E) I {
	c.Host.ProcessEvent(&event)
	return c.co.yield(event)
}

// YieldDefault yields the zero value of the event type.
func (c *Context[G, E, I, O]) YieldDefault() I {
	var event E
	return c.YieldEvent(event)
}
