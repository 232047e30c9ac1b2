// Package job runs background tasks on River, a PostgreSQL backed queue.
//
// A task is any type with Name and Handle methods. Periodic tasks add a
// Schedule method returning a cron expression:
//
//	type Reload struct{ m *catalog.Manager }
//
//	func (t *Reload) Name() string                     { return "catalog.reload" }
//	func (t *Reload) Schedule() string                 { return "*/10 * * * *" }
//	func (t *Reload) Handle(ctx context.Context) error { return t.m.Reload(ctx) }
//
//	if err := job.Migrate(ctx, pool, log); err != nil {
//		return err
//	}
//	jobs, err := job.NewManager(pool, job.WithScheduledTask(&Reload{m}), job.WithLogger(log))
//
// Every task shares one River job kind. Periodic tasks can also be
// enqueued on demand:
//
//	err = jobs.Enqueue(ctx, "catalog.reload", nil, job.UniqueFor(time.Minute))
package job
