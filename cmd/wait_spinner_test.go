package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitModelViewShowsElapsedAfterOneSecond(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newWaitModel[string]("Running /say hi...", nil, started, time.Time{})

	updated, _ := m.Update(spinner.TickMsg{Time: started.Add(300 * time.Millisecond)})
	assert.NotContains(t, updated.View(), "(")
	assert.Contains(t, updated.View(), "Running /say hi...")

	updated, _ = updated.Update(spinner.TickMsg{Time: started.Add(2500 * time.Millisecond)})
	assert.Contains(t, updated.View(), "Running /say hi... (2s)")

	updated, _ = updated.Update(waitOutcome[string]{value: "done"})
	assert.Empty(t, updated.View())
}

func TestWaitModelViewShowsTimeLeftBeforeDeadline(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newWaitModel[int]("Waiting for SeedCrackerX...", nil, started, started.Add(30*time.Second))

	updated, _ := m.Update(spinner.TickMsg{Time: started.Add(3 * time.Second)})
	assert.Contains(t, updated.View(), "Waiting for SeedCrackerX... (3s, 27s left)")

	updated, _ = updated.Update(spinner.TickMsg{Time: started.Add(45 * time.Second)})
	assert.Contains(t, updated.View(), "(45s, 0s left)")
}

func TestWaitModelIgnoresOutcomeOfOtherType(t *testing.T) {
	m := newWaitModel[int]("Waiting...", nil, time.Now(), time.Time{})

	updated, cmd := m.Update(waitOutcome[string]{value: "wrong"})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, updated.View())
}

func TestRunWaitSpinnerReturnsWaitValue(t *testing.T) {
	value, err := runWaitSpinner(context.Background(), &bytes.Buffer{}, "Waiting...", func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestRunWaitSpinnerReturnsWaitError(t *testing.T) {
	boom := errors.New("job vanished")

	value, err := runWaitSpinner(context.Background(), &bytes.Buffer{}, "Waiting...", func(context.Context) (string, error) {
		return "partial", boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "partial", value)
}

func TestRunWaitSpinnerPassesCancellationToWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	value, err := runWaitSpinner(ctx, &bytes.Buffer{}, "Waiting...", func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "last seen", ctx.Err()
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "last seen", value)
}
