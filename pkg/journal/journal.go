// Package journal records the events a game run yields so they can be
// replayed deterministically against another host, e.g. to bring a
// remote peer's copy of the game state in sync. Transporting an
// exported journal is left to the application.
package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a single recorded event in a serialized envelope.
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	Seq       uint64          `json:"seq"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Recorder accumulates the events yielded by a run, in sequence order.
// Events must be JSON-serializable.
type Recorder[E any] struct {
	entries []Entry
	seq     uint64
}

func NewRecorder[E any]() *Recorder[E] {
	return &Recorder[E]{}
}

// Record appends an event to the journal.
func (r *Recorder[E]) Record(event E) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	r.seq++
	r.entries = append(r.entries, Entry{
		ID:        uuid.New(),
		Seq:       r.seq,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	})
	return nil
}

// Entries returns the recorded log in sequence order.
func (r *Recorder[E]) Entries() []Entry {
	return r.entries
}
