package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	unknownExecutionFailure = "unknown execution failure"
	adapterFailureKind      = "AdapterFailure"
)

type RuntimeConfig struct {
	CommandTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	QueueCapacity  int
	RetainFinished int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		CommandTimeout: 5 * time.Second,
		MaxRetries:     1,
		RetryDelay:     250 * time.Millisecond,
		QueueCapacity:  64,
		RetainFinished: 100,
	}
}

func (c RuntimeConfig) withDefaults() RuntimeConfig {
	defaults := DefaultRuntimeConfig()
	if c.CommandTimeout <= 0 {
		c.CommandTimeout = defaults.CommandTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = 0
	}
	if c.QueueCapacity <= 0 {
		c.QueueCapacity = defaults.QueueCapacity
	}
	if c.RetainFinished <= 0 {
		c.RetainFinished = defaults.RetainFinished
	}

	return c
}

type trackedJob struct {
	job  domain.CommandJob
	seq  uint64
	done chan struct{}
}

// CommandRuntime executes submitted game commands one at a time, in
// submission order, on a single worker goroutine.
//
// Attempts race the adapter call against CommandTimeout. The adapter receives
// a context that is cancelled at the deadline, but an adapter that ignores it
// keeps running in the background after the runtime has moved on.
type CommandRuntime struct {
	adapter ports.GameCommandAdapter
	history ports.HistoryStore
	clock   ports.Clock
	logger  *zap.Logger
	cfg     RuntimeConfig
	newID   func() domain.JobID

	mu       sync.RWMutex
	jobs     map[domain.JobID]*trackedJob
	finished []domain.JobID
	seq      uint64
	pending  int
	idle     chan struct{}
	stopped  chan struct{}
	queue    chan domain.JobID

	lifecycle  sync.Mutex
	cancel     context.CancelFunc
	workerDone chan struct{}
}

func NewCommandRuntime(adapter ports.GameCommandAdapter, history ports.HistoryStore, clock ports.Clock, logger *zap.Logger, cfg RuntimeConfig) *CommandRuntime {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	idle := make(chan struct{})
	close(idle)

	return &CommandRuntime{
		adapter: adapter,
		history: history,
		clock:   clock,
		logger:  logger,
		cfg:     cfg,
		newID:   func() domain.JobID { return domain.JobID(uuid.NewString()) },
		jobs:    map[domain.JobID]*trackedJob{},
		idle:    idle,
		stopped: make(chan struct{}),
		queue:   make(chan domain.JobID, cfg.QueueCapacity),
	}
}

func (r *CommandRuntime) Config() RuntimeConfig {
	return r.cfg
}

// Submit records a queued job and returns its id without waiting for it.
func (r *CommandRuntime) Submit(command string) (domain.JobID, error) {
	id := r.newID()
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	select {
	case r.queue <- id:
	default:
		return "", fmt.Errorf("submit command %q: %w", command, domain.ErrQueueFull)
	}

	r.seq++
	r.jobs[id] = &trackedJob{
		job: domain.CommandJob{
			ID:          id,
			Command:     command,
			Status:      domain.JobStatusQueued,
			SubmittedAt: now,
		},
		seq:  r.seq,
		done: make(chan struct{}),
	}
	if r.pending == 0 {
		r.idle = make(chan struct{})
	}
	r.pending++

	r.logger.Debug("job submitted", zap.String("job_id", string(id)), zap.String("command", command))

	return id, nil
}

func (r *CommandRuntime) GetJob(id domain.JobID) (domain.CommandJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tracked, ok := r.jobs[id]
	if !ok {
		return domain.CommandJob{}, fmt.Errorf("get job %s: %w", id, domain.ErrUnknownJob)
	}

	return tracked.job, nil
}

// ListRecent returns up to limit jobs, newest submission first. In-memory
// jobs come first in submission order; the history store fills the
// remainder in its own order. Wall-clock timestamps are never compared.
func (r *CommandRuntime) ListRecent(ctx context.Context, limit int) ([]domain.CommandJob, error) {
	if limit <= 0 {
		return []domain.CommandJob{}, nil
	}

	r.mu.RLock()
	tracked := make([]*trackedJob, 0, len(r.jobs))
	for _, entry := range r.jobs {
		tracked = append(tracked, &trackedJob{job: entry.job, seq: entry.seq})
	}
	r.mu.RUnlock()

	slices.SortFunc(tracked, func(a, b *trackedJob) int {
		return cmp.Compare(b.seq, a.seq)
	})

	jobs := make([]domain.CommandJob, 0, min(limit, len(tracked)))
	for _, entry := range tracked {
		if len(jobs) == limit {
			break
		}
		jobs = append(jobs, entry.job)
	}

	if len(jobs) >= limit || r.history == nil {
		return jobs, nil
	}

	stored, err := r.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list job history: %w", err)
	}

	seen := make(map[domain.JobID]struct{}, len(tracked)+len(stored))
	for _, entry := range tracked {
		seen[entry.job.ID] = struct{}{}
	}
	for _, job := range stored {
		if _, ok := seen[job.ID]; ok {
			continue
		}
		seen[job.ID] = struct{}{}
		jobs = append(jobs, job)
	}

	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	return jobs, nil
}

// Start launches the worker. It is a no-op while a worker is running.
func (r *CommandRuntime) Start(ctx context.Context) {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	if r.workerDone != nil {
		select {
		case <-r.workerDone:
		default:
			return
		}
	}

	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.workerDone = done

	r.mu.Lock()
	select {
	case <-r.stopped:
		r.stopped = make(chan struct{})
	default:
	}
	r.mu.Unlock()

	go r.worker(workerCtx, done)
}

// Stop cancels the worker and waits for it to return. Jobs still in the
// queue are abandoned in the queued state.
func (r *CommandRuntime) Stop() {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	if r.cancel == nil {
		return
	}

	r.cancel()
	<-r.workerDone
	r.cancel = nil
	r.workerDone = nil

	abandoned := r.drainQueue()

	r.mu.Lock()
	select {
	case <-r.stopped:
	default:
		close(r.stopped)
	}
	r.pending = 0
	r.closeIdleLocked()
	r.mu.Unlock()

	if abandoned > 0 {
		r.logger.Info("abandoned queued jobs", zap.Int("count", abandoned))
	}
}

// WaitJob blocks until the job is finished and flushed to history.
func (r *CommandRuntime) WaitJob(ctx context.Context, id domain.JobID) (domain.CommandJob, error) {
	r.mu.RLock()
	tracked, ok := r.jobs[id]
	stopped := r.stopped
	r.mu.RUnlock()
	if !ok {
		return domain.CommandJob{}, fmt.Errorf("wait job %s: %w", id, domain.ErrUnknownJob)
	}

	select {
	case <-tracked.done:
		return r.snapshot(tracked), nil
	default:
	}

	select {
	case <-tracked.done:
		return r.snapshot(tracked), nil
	case <-stopped:
		return r.snapshot(tracked), fmt.Errorf("wait job %s: %w", id, domain.ErrRuntimeStopped)
	case <-ctx.Done():
		return r.snapshot(tracked), ctx.Err()
	}
}

// WaitIdle blocks until every submitted job has finished.
func (r *CommandRuntime) WaitIdle(ctx context.Context) error {
	r.mu.RLock()
	idle := r.idle
	r.mu.RUnlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *CommandRuntime) worker(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case id := <-r.queue:
			r.runJob(ctx, id)
		}
	}
}

func (r *CommandRuntime) runJob(ctx context.Context, id domain.JobID) {
	if ctx.Err() != nil {
		return
	}

	command, ok := r.markRunning(id)
	if !ok {
		return
	}

	log := r.logger.With(zap.String("job_id", string(id)))
	total := r.cfg.MaxRetries + 1

	for attempt := 1; attempt <= total; attempt++ {
		r.update(id, func(job *domain.CommandJob) {
			job.Attempts = attempt
		})

		result := r.attempt(ctx, command)
		switch result.outcome {
		case attemptSucceeded:
			r.update(id, func(job *domain.CommandJob) {
				job.Status = domain.JobStatusSucceeded
				job.Output = result.output
				job.Error = ""
			})
			r.finish(ctx, id)
			return
		case attemptTimedOut:
			log.Warn("command attempt timed out", zap.Int("attempt", attempt), zap.Duration("timeout", r.cfg.CommandTimeout))
			r.update(id, func(job *domain.CommandJob) {
				job.Status = domain.JobStatusTimedOut
				job.Error = fmt.Sprintf("command timed out after %s (attempt %d of %d)", r.cfg.CommandTimeout, attempt, total)
			})
		case attemptFailed:
			log.Warn("command attempt failed", zap.Int("attempt", attempt), zap.Error(result.err))
			r.update(id, func(job *domain.CommandJob) {
				job.Status = domain.JobStatusFailed
				job.Error = fmt.Sprintf("%s: %v (attempt %d of %d)", errorKind(result.err), result.err, attempt, total)
			})
		case attemptAbandoned:
			log.Debug("job abandoned mid-attempt", zap.Int("attempt", attempt))
			return
		}

		if attempt < total && !sleepContext(ctx, r.cfg.RetryDelay) {
			log.Debug("job abandoned during retry delay", zap.Int("attempt", attempt))
			return
		}
	}

	r.finish(ctx, id)
}

type attemptOutcome int

const (
	attemptSucceeded attemptOutcome = iota
	attemptTimedOut
	attemptFailed
	attemptAbandoned
)

type attemptResult struct {
	outcome attemptOutcome
	output  string
	err     error
}

type adapterReply struct {
	output string
	err    error
}

func (r *CommandRuntime) attempt(ctx context.Context, command string) attemptResult {
	if err := ctx.Err(); err != nil {
		return attemptResult{outcome: attemptAbandoned, err: err}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, r.cfg.CommandTimeout)
	defer cancel()

	replies := make(chan adapterReply, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				replies <- adapterReply{err: fmt.Errorf("%w: panic: %v", domain.ErrAdapterFailure, p)}
			}
		}()

		output, err := r.adapter.Send(attemptCtx, command)
		replies <- adapterReply{output: output, err: err}
	}()

	select {
	case reply := <-replies:
		if reply.err == nil {
			return attemptResult{outcome: attemptSucceeded, output: reply.output}
		}
		if ctx.Err() != nil {
			return attemptResult{outcome: attemptAbandoned, err: ctx.Err()}
		}
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return attemptResult{outcome: attemptTimedOut, err: domain.ErrAdapterTimeout}
		}
		return attemptResult{outcome: attemptFailed, err: reply.err}
	case <-attemptCtx.Done():
		if ctx.Err() != nil {
			return attemptResult{outcome: attemptAbandoned, err: ctx.Err()}
		}
		return attemptResult{outcome: attemptTimedOut, err: domain.ErrAdapterTimeout}
	}
}

func (r *CommandRuntime) markRunning(id domain.JobID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracked, ok := r.jobs[id]
	if !ok || tracked.job.Status != domain.JobStatusQueued {
		return "", false
	}

	tracked.job.Status = domain.JobStatusRunning
	tracked.job.StartedAt = r.now()

	return tracked.job.Command, true
}

func (r *CommandRuntime) update(id domain.JobID, apply func(job *domain.CommandJob)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tracked, ok := r.jobs[id]; ok {
		apply(&tracked.job)
	}
}

func (r *CommandRuntime) finish(ctx context.Context, id domain.JobID) {
	var job domain.CommandJob
	r.update(id, func(current *domain.CommandJob) {
		current.FinishedAt = r.now()
		if current.Status != domain.JobStatusSucceeded && current.Error == "" {
			current.Error = unknownExecutionFailure
		}
		job = *current
	})

	if r.history != nil {
		// The job is already terminal; a concurrent Stop must not lose it.
		if err := r.history.Append(context.WithoutCancel(ctx), job); err != nil {
			r.logger.Warn("append job history", zap.String("job_id", string(id)), zap.Error(err))
		}
	}

	r.logger.Debug("job finished",
		zap.String("job_id", string(id)),
		zap.String("status", string(job.Status)),
		zap.Int("attempts", job.Attempts))

	r.mu.Lock()
	defer r.mu.Unlock()

	if tracked, ok := r.jobs[id]; ok {
		close(tracked.done)
	}
	r.finished = append(r.finished, id)
	r.evictLocked()

	if r.pending > 0 {
		r.pending--
	}
	if r.pending == 0 {
		r.closeIdleLocked()
	}
}

func (r *CommandRuntime) evictLocked() {
	for len(r.finished) > r.cfg.RetainFinished {
		delete(r.jobs, r.finished[0])
		r.finished = r.finished[1:]
	}
}

func (r *CommandRuntime) closeIdleLocked() {
	select {
	case <-r.idle:
	default:
		close(r.idle)
	}
}

func (r *CommandRuntime) drainQueue() int {
	drained := 0
	for {
		select {
		case <-r.queue:
			drained++
		default:
			return drained
		}
	}
}

func (r *CommandRuntime) snapshot(tracked *trackedJob) domain.CommandJob {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return tracked.job
}

func (r *CommandRuntime) now() time.Time {
	return r.clock.Now().UTC().Round(0)
}

func sleepContext(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func errorKind(err error) string {
	var kinded interface{ Kind() string }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}

	return adapterFailureKind
}
