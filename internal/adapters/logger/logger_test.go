package logger_test

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/adapters/logger"
)

// capture returns a logger writing into the returned builder.
func capture() (*logger.Logger, *syncBuilder) {
	lg := logger.New()
	var buf syncBuilder
	lg.SetOutput(&buf)
	return lg, &buf
}

type syncBuilder struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuilder) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuilder) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func TestLogger_Info(t *testing.T) {
	lg, buf := capture()
	lg.Info("scan started")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "scan started")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := capture()
	lg.Warn("no config found")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "no config found")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := capture()
	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "permission denied")
}

func TestLogger_SetOutputRedirects(t *testing.T) {
	lg, first := capture()
	lg.Info("before")

	var second syncBuilder
	lg.SetOutput(&second)
	lg.Info("after")

	require.Contains(t, first.String(), "before")
	assert.NotContains(t, first.String(), "after")
	assert.Contains(t, second.String(), "after")
}
