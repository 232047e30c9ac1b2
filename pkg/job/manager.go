package job

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
	"github.com/robfig/cron/v3"
)

// Manager runs registered tasks on River workers backed by PostgreSQL.
type Manager struct {
	pool     *pgxpool.Pool
	client   *river.Client[pgx.Tx]
	registry *registry
	logger   *slog.Logger

	mu      sync.Mutex
	started bool
}

// NewManager builds the River client. Jobs can be enqueued before Start.
func NewManager(pool *pgxpool.Pool, opts ...Option) (*Manager, error) {
	if pool == nil {
		return nil, ErrPoolRequired
	}

	cfg := &config{
		registry:   newRegistry(),
		queues:     make(map[string]int),
		maxWorkers: 10,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	periodic, err := periodicJobs(cfg)
	if err != nil {
		return nil, err
	}

	queues := map[string]river.QueueConfig{
		river.QueueDefault: {MaxWorkers: cfg.maxWorkers},
	}
	for name, n := range cfg.queues {
		queues[name] = river.QueueConfig{MaxWorkers: n}
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, &taskWorker{registry: cfg.registry, logger: cfg.logger})

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues:       queues,
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("job: create river client: %w", err)
	}

	return &Manager{
		pool:     pool,
		client:   client,
		registry: cfg.registry,
		logger:   cfg.logger,
	}, nil
}

func periodicJobs(cfg *config) ([]*river.PeriodicJob, error) {
	jobs := make([]*river.PeriodicJob, 0, len(cfg.schedules))
	for _, s := range cfg.schedules {
		sched, err := ParseSchedule(s.expr)
		if err != nil {
			return nil, fmt.Errorf("%w: task %s: %w", ErrInvalidSchedule, s.name, err)
		}
		name := s.name
		jobs = append(jobs, river.NewPeriodicJob(sched, func() (river.JobArgs, *river.InsertOpts) {
			return taskArgs{Task: name}, nil
		}, nil))
		cfg.registry.register(s.name, s.run)
	}
	return jobs, nil
}

// Tasks lists the registered task names.
func (m *Manager) Tasks() []string { return m.registry.names() }

// Enqueue inserts a job for a registered task. It returns ErrDuplicate
// when UniqueFor matched a pending job.
func (m *Manager) Enqueue(ctx context.Context, name string, payload any, opts ...EnqueueOption) error {
	if _, ok := m.registry.get(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	args, ins, err := buildArgs(name, payload, opts)
	if err != nil {
		return err
	}
	res, err := m.client.Insert(ctx, args, ins)
	if err != nil {
		return fmt.Errorf("job: enqueue %s: %w", name, err)
	}
	return inserted(name, res)
}

// EnqueueTx inserts the job as part of tx; it becomes visible on commit.
func (m *Manager) EnqueueTx(ctx context.Context, tx pgx.Tx, name string, payload any, opts ...EnqueueOption) error {
	if _, ok := m.registry.get(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	args, ins, err := buildArgs(name, payload, opts)
	if err != nil {
		return err
	}
	res, err := m.client.InsertTx(ctx, tx, args, ins)
	if err != nil {
		return fmt.Errorf("job: enqueue %s: %w", name, err)
	}
	return inserted(name, res)
}

func inserted(name string, res *rivertype.JobInsertResult) error {
	if res != nil && res.UniqueSkippedAsDuplicate {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	return nil
}

// Start begins working jobs and periodic schedules.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return ErrAlreadyStarted
	}
	if err := m.client.Start(ctx); err != nil {
		return fmt.Errorf("job: start: %w", err)
	}
	m.started = true
	m.logger.InfoContext(ctx, "job manager started", slog.Any("tasks", m.registry.names()))
	return nil
}

// Stop waits for running jobs to finish or ctx to end.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return ErrNotStarted
	}
	if err := m.client.Stop(ctx); err != nil {
		return fmt.Errorf("job: stop: %w", err)
	}
	m.started = false
	m.logger.InfoContext(ctx, "job manager stopped")
	return nil
}

// StartFunc adapts Start to a babel.StartupHook hook.
func (m *Manager) StartFunc() func(context.Context) error { return m.Start }

// Shutdown adapts Stop to a babel.ShutdownHook hook.
func (m *Manager) Shutdown() func(context.Context) error { return m.Stop }

// taskArgs is the single River job kind; Task selects the handler.
type taskArgs struct {
	Task    string          `json:"task" river:"unique"`
	Payload json.RawMessage `json:"payload,omitempty" river:"unique"`
}

func (taskArgs) Kind() string { return "babel:task" }

type taskWorker struct {
	river.WorkerDefaults[taskArgs]
	registry *registry
	logger   *slog.Logger
}

func (w *taskWorker) Work(ctx context.Context, j *river.Job[taskArgs]) error {
	e, ok := w.registry.get(j.Args.Task)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, j.Args.Task)
	}

	log := w.logger.With(
		slog.String("task", j.Args.Task),
		slog.Int64("job_id", j.ID),
		slog.Int("attempt", j.Attempt),
	)
	start := time.Now()
	if err := e.Execute(ctx, j.Args.Payload); err != nil {
		log.ErrorContext(ctx, "task failed", slog.Any("error", err))
		return err
	}
	log.DebugContext(ctx, "task done", slog.Duration("took", time.Since(start)))
	return nil
}

type cronSchedule struct {
	cron.Schedule
}

// ParseSchedule reads a five field cron expression (minute hour dom month
// dow) or a descriptor such as "@every 5m".
func ParseSchedule(expr string) (river.PeriodicSchedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	s, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return cronSchedule{s}, nil
}
