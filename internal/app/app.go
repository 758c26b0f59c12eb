package app

import (
	"errors"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"eventd/internal/config"
	"eventd/internal/registry"
)

// App holds the process-wide state of the event system. Build one with New or
// NewWithConfig, publish a table with Init, then Dispatch.
type App struct {
	reg   *registry.Registry
	table atomic.Pointer[config.Table]

	mu         sync.Mutex
	singletons map[string]any

	log    zerolog.Logger
	tracer TracePublisher
}

// New returns an App resolving classes through reg.
func New(reg *registry.Registry) *App {
	return NewWithConfig(Config{Registry: reg})
}

// Init loads the event document at path and publishes it. On error the
// previously published table, if any, stays in place.
func (a *App) Init(path string) error {
	t, err := config.Load(path)
	if err != nil {
		a.log.Error().Err(err).Str("path", path).Msg("config load failed")
		return err
	}
	a.InitTable(t)
	return nil
}

// InitTable publishes an already-built table, replacing the current one in a
// single step.
func (a *App) InitTable(t *config.Table) {
	if t == nil {
		t = config.NewTable()
	}
	a.table.Store(t)
	for _, err := range a.Validate() {
		a.log.Warn().Err(err).Msg("binding references an unregistered class")
	}
	a.log.Info().
		Str("source", t.Source).
		Int("events", len(t.Events)).
		Int("bindings", t.Bindings()).
		Bool("developer_mode", t.DeveloperMode).
		Msg("event table loaded")
	a.tracer.Publish(Trace{Name: TraceConfigLoaded, Fields: map[string]any{
		"source":         t.Source,
		"events":         len(t.Events),
		"developer_mode": t.DeveloperMode,
	}})
}

// Table returns the published table, or nil before Init.
func (a *App) Table() *config.Table { return a.table.Load() }

// Ready reports whether a table has been published.
func (a *App) Ready() bool { return a.table.Load() != nil }

// DeveloperMode reports the flag of the published table.
func (a *App) DeveloperMode() bool {
	t := a.table.Load()
	return t != nil && t.DeveloperMode
}

// Registry returns the registry used to resolve classes.
func (a *App) Registry() *registry.Registry { return a.reg }

// SetTracePublisher installs a trace sink. Call it before dispatching.
func (a *App) SetTracePublisher(p TracePublisher) {
	if p == nil {
		p = noopTracer{}
	}
	a.tracer = p
}

// Singletons returns the class names currently cached, sorted.
func (a *App) Singletons() []string {
	a.mu.Lock()
	out := make([]string, 0, len(a.singletons))
	for k := range a.singletons {
		out = append(out, k)
	}
	a.mu.Unlock()
	sort.Strings(out)
	return out
}

// Close drops the published table and the singleton cache. Cached instances
// implementing io.Closer are closed; their errors are joined.
func (a *App) Close() error {
	a.table.Store(nil)
	a.mu.Lock()
	cached := a.singletons
	a.singletons = make(map[string]any)
	a.mu.Unlock()
	singletonsCached.Sub(float64(len(cached)))

	var errs []error
	for _, v := range cached {
		if c, ok := v.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
