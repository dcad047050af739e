package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteresting(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pyproject.toml", true},
		{"requirements.txt", true},
		{"README.md", true},
		{"docs/guide.rst", true},
		{"src/post_tracking/__init__.py", true},
		{".pyproject.toml.swp", false},
		{"pyproject.toml~", false},
		{"build/output.whl", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, interesting(tt.path))
		})
	}
}

func TestWatcher_RerunsOnChange(t *testing.T) {
	root := t.TempDir()
	descriptor := filepath.Join(root, "pyproject.toml")
	require.NoError(t, os.WriteFile(descriptor, []byte("[project]\n"), 0o644))

	var runs atomic.Int32
	w, err := New(Config{
		Root:          root,
		DebounceDelay: 20 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	// Wait for the initial run.
	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(descriptor, []byte("[project]\nname = \"x\"\n"), 0o644))

	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
