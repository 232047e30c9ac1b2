package job

import (
	"context"
	"log/slog"
)

type config struct {
	registry   *registry
	schedules  []schedule
	queues     map[string]int
	maxWorkers int
	logger     *slog.Logger
}

type schedule struct {
	name string
	expr string
	run  plainTask
}

// Option configures a Manager.
type Option func(*config)

// WithTask registers a task that takes a JSON payload of type P:
//
//	func (t *ImportBundle) Name() string { return "catalog.import" }
//	func (t *ImportBundle) Handle(ctx context.Context, p ImportPayload) error
func WithTask[P any, T interface {
	Name() string
	Handle(context.Context, P) error
}](task T) Option {
	return func(c *config) {
		c.registry.register(task.Name(), typedTask[P]{handle: task.Handle})
	}
}

// WithScheduledTask registers a task that River runs on a five field
// cron schedule. The task can also be enqueued by name.
func WithScheduledTask[T interface {
	Name() string
	Schedule() string
	Handle(context.Context) error
}](task T) Option {
	return func(c *config) {
		c.schedules = append(c.schedules, schedule{
			name: task.Name(),
			expr: task.Schedule(),
			run:  task.Handle,
		})
	}
}

// WithQueue adds a named queue with its own worker count.
func WithQueue(name string, workers int) Option {
	return func(c *config) {
		if name != "" && workers > 0 {
			c.queues[name] = workers
		}
	}
}

// WithMaxWorkers sets the default queue's worker count. Default: 10.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxWorkers = n
		}
	}
}

// WithLogger sets the logger for the manager and River.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
