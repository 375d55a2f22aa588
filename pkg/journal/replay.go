package journal

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/turnwheel/turnwheel/pkg/engine"
	"github.com/turnwheel/turnwheel/pkg/queue"
)

// Replay applies a recorded event log to a host in sequence order. Each
// entry passes through the same HandleEvent hook as events yielded from
// inside a run, so replaying a journal of a run mutates the game state
// exactly as the run itself did.
//
// Replay opens a write transaction per entry; it must not be called
// while a transaction is open on the host.
func Replay[G, E, I, O any](host *engine.Host[G, E, I, O], entries []Entry) error {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Seq < ordered[j].Seq
	})

	for _, entry := range ordered {
		var event E
		if err := json.Unmarshal(entry.Payload, &event); err != nil {
			return fmt.Errorf("failed to unmarshal entry %d: %w", entry.Seq, err)
		}
		host.ProcessEvent(&event)
	}
	return nil
}

const defaultStagingSize = 1024

// Applier stages incoming entries and applies them to a host in
// batches. This is the shape a transport layer feeds: entries arrive
// whenever the wire delivers them, and the application drains them
// between turns, when no transaction is open.
type Applier[G, E, I, O any] struct {
	host    *engine.Host[G, E, I, O]
	pending queue.Queue[Entry]
}

func NewApplier[G, E, I, O any](host *engine.Host[G, E, I, O]) *Applier[G, E, I, O] {
	return &Applier[G, E, I, O]{
		host:    host,
		pending: queue.NewInMemoryQueue[Entry](defaultStagingSize),
	}
}

// Stage enqueues an entry for a later Drain. Returns an error if the
// staging queue is full; draining frees the space.
func (a *Applier[G, E, I, O]) Stage(entry Entry) error {
	return a.pending.Enqueue(entry)
}

// Pending returns the number of staged entries.
func (a *Applier[G, E, I, O]) Pending() int {
	return a.pending.Size()
}

// Drain replays all staged entries against the host in sequence order.
func (a *Applier[G, E, I, O]) Drain() error {
	return Replay(a.host, a.pending.ReadAll())
}
