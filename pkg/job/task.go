package job

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
)

// executor runs one task with its raw JSON payload.
type executor interface {
	Execute(ctx context.Context, payload json.RawMessage) error
}

type registry struct {
	mu    sync.RWMutex
	tasks map[string]executor
}

func newRegistry() *registry {
	return &registry{tasks: make(map[string]executor)}
}

func (r *registry) register(name string, e executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[name] = e
}

func (r *registry) get(name string) (executor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tasks[name]
	return e, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// typedTask decodes the payload into P before calling the handler.
type typedTask[P any] struct {
	handle func(context.Context, P) error
}

func (t typedTask[P]) Execute(ctx context.Context, raw json.RawMessage) error {
	var payload P
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return errors.Join(ErrInvalidPayload, err)
		}
	}
	return t.handle(ctx, payload)
}

// plainTask ignores the payload; periodic tasks have none.
type plainTask func(context.Context) error

func (t plainTask) Execute(ctx context.Context, _ json.RawMessage) error {
	return t(ctx)
}
