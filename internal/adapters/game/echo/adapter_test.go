package echo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterEchoesCommand(t *testing.T) {
	t.Parallel()

	output, err := NewAdapter().Send(context.Background(), "/time set day")
	require.NoError(t, err)
	assert.Equal(t, "executed: /time set day", output)
}

func TestAdapterHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdapter().Send(ctx, "/time set day")
	require.ErrorIs(t, err, context.Canceled)
}
