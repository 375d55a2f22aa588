package engine

import "sync"

// accessCell is a non-blocking exclusive-access guard for the shared
// game state. Acquiring it while it is held is a contract violation and
// fails immediately; it never blocks and never queues waiters.
type accessCell struct {
	mu sync.Mutex
}

func (c *accessCell) tryAcquire() bool {
	return c.mu.TryLock()
}

// acquire panics with ErrReentrantTransaction if the cell is held.
func (c *accessCell) acquire() {
	if !c.mu.TryLock() {
		panic(ErrReentrantTransaction)
	}
}

func (c *accessCell) release() {
	c.mu.Unlock()
}

// sharedState tracks whether a game has been started and holds the game
// state itself. There is exactly one per session; it is reached only
// through Host handles and only under the access cell.
type sharedState[G, E, I, O any] struct {
	cell    accessCell
	started bool
	game    G
	rules   Rules[G, E, I, O]
}

// Host manages a game session, offering read/write access to the game
// state whenever the game is not currently running a turn. Hosts are
// shared handles: Clone returns another handle to the same state, never
// a copy of it.
type Host[G, E, I, O any] struct {
	state *sharedState[G, E, I, O]
}

// NewHost creates a Host to manage a game session, where game holds the
// initial state of the game board. Any setup is expected to happen
// before this, such that calling Play will initiate the first turn.
func NewHost[G, E, I, O any](rules Rules[G, E, I, O], game G) *Host[G, E, I, O] {
	return &Host[G, E, I, O]{
		state: &sharedState[G, E, I, O]{
			game:  game,
			rules: rules,
		},
	}
}

// Play starts the game, returning a Coroutine that lets the caller
// process events as they are yielded and supply inputs to advance the
// run. Returns ErrAlreadyStarted if a run is already active on this
// session, or ErrInUse if the game state is locked by an open
// transaction.
func (h *Host[G, E, I, O]) Play() (*Coroutine[E, I, O], error) {
	if !h.state.cell.tryAcquire() {
		return nil, ErrInUse
	}
	if h.state.started {
		h.state.cell.release()
		return nil, ErrAlreadyStarted
	}
	h.state.started = true
	h.state.cell.release()

	co := &Coroutine[E, I, O]{
		steps:  make(chan step[E, O]),
		inputs: make(chan I),
		quit:   make(chan struct{}),
	}
	ctx := &Context[G, E, I, O]{Host: h.Clone(), co: co}
	co.body = func() O {
		return h.state.rules.Play(ctx)
	}
	return co, nil
}

// Game returns a snapshot of the game state, copied by assignment. The
// snapshot does not change if the live state is mutated afterwards;
// game types holding reference values (slices, maps) should be read
// with CloneGame instead.
func (h *Host[G, E, I, O]) Game() G {
	h.state.cell.acquire()
	defer h.state.cell.release()
	return h.state.game
}

// WithGame grants temporary read access to the game state via a scoped
// transaction. It panics with ErrReentrantTransaction if the state is
// already being accessed, i.e. if a transaction calls WithGame or
// WithGameMut from inside itself.
func (h *Host[G, E, I, O]) WithGame(transact func(game G)) {
	h.state.cell.acquire()
	defer h.state.cell.release()
	transact(h.state.game)
}

// WithGameMut grants temporary write access to the game state via a
// scoped transaction. The same re-entrancy rules as WithGame apply.
func (h *Host[G, E, I, O]) WithGameMut(transact func(game *G)) {
	h.state.cell.acquire()
	defer h.state.cell.release()
	transact(&h.state.game)
}

// BorrowGame opens a read transaction and returns a lease on the game
// state. The transaction stays open until Release is called; callers
// must not mutate the state through the lease.
func (h *Host[G, E, I, O]) BorrowGame() *GameRef[G] {
	h.state.cell.acquire()
	return &GameRef[G]{game: &h.state.game, cell: &h.state.cell}
}

// BorrowGameMut opens a write transaction and returns a mutable lease
// on the game state. The transaction stays open until Release is called.
func (h *Host[G, E, I, O]) BorrowGameMut() *GameMut[G] {
	h.state.cell.acquire()
	return &GameMut[G]{GameRef[G]{game: &h.state.game, cell: &h.state.cell}}
}

// ProcessEvent gives the game a chance to react to an event under a
// write transaction, invoking the capability's HandleEvent hook with
// exclusive access to both the game state and the event. Events yielded
// from inside a run pass through here before reaching the driver; a
// synchronization layer can call it directly to replay events sourced
// elsewhere against local state.
func (h *Host[G, E, I, O]) ProcessEvent(event *E) {
	h.state.cell.acquire()
	defer h.state.cell.release()
	h.state.rules.HandleEvent(&h.state.game, event)
}

// Clone returns another handle sharing the same game session. Mutations
// made through one handle are visible through all of them.
func (h *Host[G, E, I, O]) Clone() *Host[G, E, I, O] {
	return &Host[G, E, I, O]{state: h.state}
}

// With runs transact under a read transaction and returns its result.
// Results that Go methods cannot express generically are returned here
// via a package-level function instead.
func With[G, E, I, O, R any](h *Host[G, E, I, O], transact func(game G) R) R {
	var result R
	h.WithGame(func(game G) {
		result = transact(game)
	})
	return result
}

// WithMut runs transact under a write transaction and returns its result.
func WithMut[G, E, I, O, R any](h *Host[G, E, I, O], transact func(game *G) R) R {
	var result R
	h.WithGameMut(func(game *G) {
		result = transact(game)
	})
	return result
}

// CloneGame returns a deep copy of the game state. Only available for
// game types implementing Clone.
func CloneGame[G interface{ Clone() G }, E, I, O any](h *Host[G, E, I, O]) G {
	return With(h, func(game G) G {
		return game.Clone()
	})
}

// GameRef is a scoped read lease on the game state. The underlying
// transaction is held for as long as the lease lives; callers must not
// mutate the state through it.
type GameRef[G any] struct {
	game     *G
	cell     *accessCell
	released bool
}

// Game returns the leased game state.
func (r *GameRef[G]) Game() *G {
	return r.game
}

// Release closes the transaction. Releasing twice is a no-op.
func (r *GameRef[G]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.release()
}

// GameMut is a scoped write lease on the game state.
type GameMut[G any] struct {
	GameRef[G]
}
