package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/adapters/telemetry"
	"go.trai.ch/zerr"
)

func TestOTelTracer_StartAndEnd(t *testing.T) {
	tracer := telemetry.NewOTelTracer("skein-test")

	ctx, span := tracer.Start(context.Background(), "scan")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("files", 3)
	span.SetAttribute("root", "/src")
	span.SetAttribute("cached", true)
	span.SetAttribute("names", []string{"pkg-a"})
	span.RecordError(zerr.New("lookup failed"))

	n, err := span.Write([]byte("resolved pkg-a"))
	require.NoError(t, err)
	assert.Equal(t, len("resolved pkg-a"), n)

	span.End()
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "scan")
	assert.Equal(t, context.Background(), ctx)

	span.SetAttribute("ignored", 1)
	span.RecordError(nil)
	n, err := span.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	span.End()
}
