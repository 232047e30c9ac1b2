package internal

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/babel/pkg/job"
)

// Enqueuer is what the context needs to dispatch background work.
// *job.Manager implements it.
type Enqueuer interface {
	Enqueue(ctx context.Context, name string, payload any, opts ...job.EnqueueOption) error
	EnqueueTx(ctx context.Context, tx pgx.Tx, name string, payload any, opts ...job.EnqueueOption) error
}

// Worker is started before the server accepts requests and stopped after
// it drains. *job.Manager implements it.
type Worker interface {
	StartFunc() func(context.Context) error
	Shutdown() func(context.Context) error
}
