package engine

import "errors"

var (
	// ErrAlreadyStarted is returned by Play when a run is already active
	// on the shared game state. It is permanent for the lifetime of the
	// state; start a fresh game by constructing a new Host.
	ErrAlreadyStarted = errors.New("game has already been started")

	// ErrInUse is returned by Play when the game state is locked by an
	// open transaction. It is transient; the caller may retry once the
	// transaction is released.
	ErrInUse = errors.New("game state is currently in use")

	// ErrRunCompleted is returned by Resume after the run has produced
	// its outcome.
	ErrRunCompleted = errors.New("run has already completed")

	// ErrReentrantTransaction is the panic value raised when a transaction
	// is opened while another one is open on the same game state. This is
	// a programming error, not a recoverable condition.
	ErrReentrantTransaction = errors.New("transaction opened inside an open transaction")
)
