package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithSpinner_RunsAction(t *testing.T) {
	ran := false
	err := RunWithSpinner(context.Background(), func() error {
		ran = true
		return nil
	}, WithTitle("Working..."))

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	wantErr := errors.New("pipeline failed")
	err := RunWithSpinner(context.Background(), func() error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}
