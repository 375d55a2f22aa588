package journal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnwheel/turnwheel/pkg/engine"
)

// chatGame accumulates every event its HandleEvent hook sees, so two
// hosts fed the same events end up with identical state.
type chatGame struct {
	Log []string
}

type chatRules struct{}

func (chatRules) Play(ctx *engine.Context[chatGame, string, struct{}, struct{}]) struct{} {
	ctx.YieldEvent("hello")
	ctx.YieldEvent("world")
	ctx.YieldEvent("goodbye")
	return struct{}{}
}

func (chatRules) HandleEvent(game *chatGame, event *string) {
	game.Log = append(game.Log, *event)
}

func newChatHost() *engine.Host[chatGame, string, struct{}, struct{}] {
	return engine.NewHost[chatGame, string, struct{}, struct{}](chatRules{}, chatGame{})
}

func TestReplayMatchesRun(t *testing.T) {
	source := newChatHost()
	co, err := source.Play()
	require.NoError(t, err)

	recorder := NewRecorder[string]()
	for {
		turn, err := co.Resume(struct{}{})
		require.NoError(t, err)
		if turn.Done {
			break
		}
		require.NoError(t, recorder.Record(turn.Event))
	}

	peer := newChatHost()
	require.NoError(t, Replay(peer, recorder.Entries()))

	assert.Equal(t, source.Game(), peer.Game())
	assert.Equal(t, []string{"hello", "world", "goodbye"}, peer.Game().Log)
}

func TestApplierDrainsInSequenceOrder(t *testing.T) {
	recorder := NewRecorder[string]()
	for _, event := range []string{"first", "second", "third"} {
		require.NoError(t, recorder.Record(event))
	}

	host := newChatHost()
	applier := NewApplier(host)

	// Stage out of order, the way an unordered transport might deliver.
	entries := recorder.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		require.NoError(t, applier.Stage(entries[i]))
	}
	assert.Equal(t, 3, applier.Pending())

	require.NoError(t, applier.Drain())
	assert.Equal(t, 0, applier.Pending())
	assert.Equal(t, []string{"first", "second", "third"}, host.Game().Log)
}

func TestExportImportRoundTrip(t *testing.T) {
	recorder := NewRecorder[string]()
	for _, event := range []string{"hello", "world"} {
		require.NoError(t, recorder.Record(event))
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, recorder.Entries()))

	imported, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, recorder.Entries(), imported)

	host := newChatHost()
	require.NoError(t, Replay(host, imported))
	assert.Equal(t, []string{"hello", "world"}, host.Game().Log)
}
