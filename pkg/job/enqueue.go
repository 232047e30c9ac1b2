package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// uniqueStates are the job states a duplicate is checked against.
// Completed jobs are left out, so work requested after a run is queued
// again.
var uniqueStates = []rivertype.JobState{
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRetryable,
	rivertype.JobStateRunning,
	rivertype.JobStateScheduled,
}

type enqueueConfig struct {
	queue       string
	runAt       time.Time
	maxAttempts int
	priority    int
	uniqueFor   time.Duration
	tags        []string
}

// EnqueueOption tunes a single Enqueue call.
type EnqueueOption func(*enqueueConfig)

// InQueue routes the job to a queue registered with WithQueue.
func InQueue(name string) EnqueueOption {
	return func(c *enqueueConfig) { c.queue = name }
}

// ScheduledIn delays the job by d.
func ScheduledIn(d time.Duration) EnqueueOption {
	return func(c *enqueueConfig) {
		if d > 0 {
			c.runAt = time.Now().Add(d)
		}
	}
}

// MaxAttempts caps the retries. River's default applies when n <= 0.
func MaxAttempts(n int) EnqueueOption {
	return func(c *enqueueConfig) { c.maxAttempts = n }
}

// Priority sets the River priority, 1 (highest) to 4.
func Priority(p int) EnqueueOption {
	return func(c *enqueueConfig) { c.priority = p }
}

// UniqueFor drops a job when one with the same task and payload was
// enqueued within d and has not finished yet. Enqueue then returns
// ErrDuplicate.
func UniqueFor(d time.Duration) EnqueueOption {
	return func(c *enqueueConfig) { c.uniqueFor = d }
}

// Tags labels the job.
func Tags(tags ...string) EnqueueOption {
	return func(c *enqueueConfig) { c.tags = append(c.tags, tags...) }
}

func buildArgs(name string, payload any, opts []EnqueueOption) (taskArgs, *river.InsertOpts, error) {
	args := taskArgs{Task: name}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return args, nil, fmt.Errorf("job: marshal payload: %w", err)
		}
		args.Payload = raw
	}

	var cfg enqueueConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ins := &river.InsertOpts{
		Queue:       cfg.queue,
		ScheduledAt: cfg.runAt,
		Priority:    cfg.priority,
		Tags:        cfg.tags,
	}
	if cfg.maxAttempts > 0 {
		ins.MaxAttempts = cfg.maxAttempts
	}
	if cfg.uniqueFor > 0 {
		ins.UniqueOpts = river.UniqueOpts{ByArgs: true, ByPeriod: cfg.uniqueFor, ByState: uniqueStates}
	}
	return args, ins, nil
}
