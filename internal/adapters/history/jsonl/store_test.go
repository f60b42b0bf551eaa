package jsonl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "history.jsonl"))
}

var statuses = []domain.JobStatus{
	domain.JobStatusQueued,
	domain.JobStatusRunning,
	domain.JobStatusSucceeded,
	domain.JobStatusFailed,
	domain.JobStatusTimedOut,
}

func drawTime(r *rapid.T, label string) time.Time {
	if rapid.Bool().Draw(r, label+"_zero") {
		return time.Time{}
	}
	sec := rapid.Int64Range(0, 4102444800).Draw(r, label+"_sec")
	nsec := rapid.Int64Range(0, 999999999).Draw(r, label+"_nsec")
	return time.Unix(sec, nsec).UTC()
}

func TestStoreRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		store := newTestStore(t)
		ctx := context.Background()

		count := rapid.IntRange(1, 20).Draw(r, "count")
		written := make([]domain.CommandJob, 0, count)
		for i := range count {
			job := domain.CommandJob{
				ID:          domain.JobID(fmt.Sprintf("job-%03d", i)),
				Command:     rapid.String().Draw(r, "command"),
				Status:      rapid.SampledFrom(statuses).Draw(r, "status"),
				SubmittedAt: time.Unix(rapid.Int64Range(0, 4102444800).Draw(r, "submitted"), int64(i)).UTC(),
				StartedAt:   drawTime(r, "started"),
				FinishedAt:  drawTime(r, "finished"),
				Output:      rapid.String().Draw(r, "output"),
				Error:       rapid.String().Draw(r, "error"),
				Attempts:    rapid.IntRange(0, 5).Draw(r, "attempts"),
			}
			if err := store.Append(ctx, job); err != nil {
				r.Fatalf("append: %v", err)
			}
			written = append(written, job)
		}

		limit := rapid.IntRange(1, count+5).Draw(r, "limit")
		got, err := store.ListRecent(ctx, limit)
		if err != nil {
			r.Fatalf("list recent: %v", err)
		}

		want := make([]domain.CommandJob, 0, limit)
		for i := len(written) - 1; i >= 0 && len(want) < limit; i-- {
			want = append(want, written[i])
		}
		if diff := cmp.Diff(want, got); diff != "" {
			r.Fatalf("history mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestStoreWritesOneObjectPerLine(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	submitted := time.Date(2026, 3, 1, 12, 30, 0, 123456789, time.FixedZone("CET", 3600))
	require.NoError(t, store.Append(context.Background(), domain.CommandJob{
		ID:          "job-1",
		Command:     "/time set day",
		Status:      domain.JobStatusSucceeded,
		SubmittedAt: submitted,
		Attempts:    1,
	}))
	require.NoError(t, store.Append(context.Background(), domain.CommandJob{
		ID:          "job-2",
		Command:     "/op me",
		Status:      domain.JobStatusFailed,
		SubmittedAt: submitted,
		Error:       "ClientError: denied",
		Attempts:    2,
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "job-1", first["id"])
	assert.Equal(t, "succeeded", first["status"])
	assert.Equal(t, "2026-03-01T11:30:00.123456789Z", first["submitted_at"])
	assert.Contains(t, first, "output")
	assert.Nil(t, first["output"])
	assert.Nil(t, first["error"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "ClientError: denied", second["error"])
}

func TestStoreToleratesMissingAndBlankLines(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	jobs, err := store.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o700))
	content := "\n" +
		`{"id":"a","command":"/say a","status":"succeeded","submitted_at":"2026-01-01T00:00:00Z","output":"ok","error":null}` + "\n" +
		"   \n" +
		`{"id":"b","command":"/say b","status":"timed_out","submitted_at":"2026-01-01T00:00:01Z","output":null,"error":"timed out"}` + "\n\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o600))

	jobs, err = store.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, domain.JobID("b"), jobs[0].ID)
	assert.Equal(t, domain.JobStatusTimedOut, jobs[0].Status)
	assert.Equal(t, "timed out", jobs[0].Error)
	assert.Equal(t, "ok", jobs[1].Output)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), jobs[1].SubmittedAt)
}

func TestStoreListRecentKeepsNewestDuplicate(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, domain.CommandJob{ID: "a", Status: domain.JobStatusFailed, SubmittedAt: time.Unix(1, 0)}))
	require.NoError(t, store.Append(ctx, domain.CommandJob{ID: "b", Status: domain.JobStatusSucceeded, SubmittedAt: time.Unix(2, 0)}))
	require.NoError(t, store.Append(ctx, domain.CommandJob{ID: "a", Status: domain.JobStatusSucceeded, SubmittedAt: time.Unix(1, 0)}))

	jobs, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, domain.JobID("a"), jobs[0].ID)
	assert.Equal(t, domain.JobStatusSucceeded, jobs[0].Status)
	assert.Equal(t, domain.JobID("b"), jobs[1].ID)

	jobs, err = store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestStoreRejectsMalformedLine(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o700))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json}\n"), 0o600))

	_, err := store.ListRecent(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode history line 1")
}

func TestStoreConcurrentAppends(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, domain.CommandJob{
				ID:          domain.JobID(fmt.Sprintf("job-%d", i)),
				Command:     strings.Repeat("x", 512),
				Status:      domain.JobStatusSucceeded,
				SubmittedAt: time.Unix(int64(i), 0),
			}))
		}()
	}
	wg.Wait()

	jobs, err := store.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, jobs, 50)
}
