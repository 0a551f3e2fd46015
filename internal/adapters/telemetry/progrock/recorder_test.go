package progrock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/adapters/telemetry/progrock"
	"go.trai.ch/zerr"
)

func TestRecorder_RecordAndComplete(t *testing.T) {
	recorder := progrock.New()

	v := recorder.Record("/src/app.ts")
	require.NotNil(t, v)
	v.Complete(nil)

	failed := recorder.Record("/src/broken.ts")
	failed.Complete(zerr.New("unreadable"))

	cached := recorder.Record("/src/util.ts")
	cached.Cached()
	cached.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_SameNameSameVertex(t *testing.T) {
	recorder := progrock.New()
	defer recorder.Close() //nolint:errcheck

	// Re-recording the same file must not panic or fork the display.
	a := recorder.Record("/src/app.ts")
	b := recorder.Record("/src/app.ts")
	require.NotNil(t, a)
	require.NotNil(t, b)
	a.Complete(nil)
	b.Complete(nil)
}
