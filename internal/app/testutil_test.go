package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"eventd/internal/config"
	"eventd/internal/event"
	"eventd/internal/registry"
)

var instanceSeq atomic.Int64

// call records one handler invocation.
type call struct {
	class    string
	method   string
	instance int64
	ev       *event.Event
	depth    int
}

// recorder collects calls across all fixture observers of a test.
type recorder struct {
	mu    sync.Mutex
	calls []call
}

func (r *recorder) add(c call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *recorder) all() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}

func (r *recorder) handlers() []string {
	var out []string
	for _, c := range r.all() {
		out = append(out, c.class+"."+c.method)
	}
	return out
}

// fixture is a generic observer: it exposes the methods listed in methods.
type fixture struct {
	id      int64
	class   string
	args    []any
	rec     *recorder
	methods map[string]error
	closed  bool
}

func (f *fixture) Handler(method string) (event.Handler, bool) {
	res, ok := f.methods[method]
	if !ok {
		return nil, false
	}
	return func(ctx context.Context, ev *event.Event) error {
		f.rec.add(call{class: f.class, method: method, instance: f.id, ev: ev, depth: DispatchDepth(ctx)})
		return res
	}, true
}

func (f *fixture) Close() error {
	f.closed = true
	return nil
}

// register adds class to reg; its instances expose the given methods, each
// returning the mapped error.
func register(t *testing.T, reg *registry.Registry, rec *recorder, class string, methods map[string]error) {
	t.Helper()
	err := reg.Register(class, func(args ...any) (any, error) {
		return &fixture{id: instanceSeq.Add(1), class: class, args: args, rec: rec, methods: methods}, nil
	})
	require.NoError(t, err, "register %s", class)
}

func exposes(methods ...string) map[string]error {
	m := make(map[string]error, len(methods))
	for _, name := range methods {
		m[name] = nil
	}
	return m
}

var errHandler = errors.New("handler failed")

// table builds a single-event table from bindings.
func table(devMode bool, name string, bindings ...config.Binding) *config.Table {
	t := config.NewTable()
	t.DeveloperMode = devMode
	t.Events[name] = &config.EventDefinition{Name: name, Observers: bindings}
	return t
}

func bind(key, class, method string, singleton bool) config.Binding {
	return config.Binding{Key: key, Class: class, Method: method, Singleton: singleton}
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644), "write %s", name)
	return p
}
