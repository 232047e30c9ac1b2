package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/babel/pkg/job"
)

// ReloadTaskName is the job name of the reload task.
const ReloadTaskName = "catalog.reload"

// ReloadTask reloads the catalogs on a cron schedule. It is registered
// with job.WithScheduledTask and can also be enqueued by name.
type ReloadTask struct {
	manager   *Manager
	schedule  string
	before    []func(context.Context) error
	broadcast Execer
}

// NewReloadTask runs m.Reload on schedule, a five field cron expression.
// before hooks run first, for example StorageSource.Invalidate.
func NewReloadTask(m *Manager, schedule string, before ...func(context.Context) error) *ReloadTask {
	return &ReloadTask{manager: m, schedule: schedule, before: before}
}

// BroadcastTo makes the task announce the reload on ReloadChannel instead
// of reloading only the process that runs it. Every replica, this one
// included, reloads through its Listener.
func (t *ReloadTask) BroadcastTo(db Execer) *ReloadTask {
	t.broadcast = db
	return t
}

func (t *ReloadTask) Name() string     { return ReloadTaskName }
func (t *ReloadTask) Schedule() string { return t.schedule }

func (t *ReloadTask) Handle(ctx context.Context) error {
	var errs []error
	for _, fn := range t.before {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if t.broadcast != nil {
		return Broadcast(ctx, t.broadcast)
	}
	return t.manager.Reload(ctx)
}

// TxEnqueuer inserts a job inside a transaction. *job.Manager satisfies it.
type TxEnqueuer interface {
	EnqueueTx(ctx context.Context, tx pgx.Tx, name string, payload any, opts ...job.EnqueueOption) error
}

// EnqueueReload queues a reload in the transaction of every Store write.
// The jobs are not deduplicated: a reload already running may have read
// the overrides before the write commits.
func EnqueueReload(e TxEnqueuer) StoreOption {
	return OnChange(func(ctx context.Context, tx pgx.Tx) error {
		return e.EnqueueTx(ctx, tx, ReloadTaskName, nil)
	})
}
