package e2e

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"eventd/internal/app"
	"eventd/internal/event"
	"eventd/internal/httpapi"
	"eventd/internal/observers"
	"eventd/internal/registry"
)

// syncBuffer lets observers write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// rejector fails every event it handles.
type rejector struct{}

var errRejected = errors.New("rejected")

func (rejector) Handler(method string) (event.Handler, bool) {
	if method != "reject" {
		return nil, false
	}
	return func(ctx context.Context, ev *event.Event) error { return errRejected }, true
}

// forwarder raises needs_missing_method from inside its own handler.
type forwarder struct{ d event.Dispatcher }

func (f forwarder) Handler(method string) (event.Handler, bool) {
	if method != "forward" {
		return nil, false
	}
	return func(ctx context.Context, ev *event.Event) error {
		return f.d.Dispatch(ctx, "needs_missing_method", ev.Data())
	}, true
}

var errBroken = errors.New("broken constructor")

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file %s: %v", p, err)
	}
	return p
}

// newServer wires the demo observers plus a few test classes into an App
// loaded from path and serves it over HTTP.
func newServer(t *testing.T, path string) (*httptest.Server, *app.App, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	reg := registry.New()
	a := app.New(reg)
	if err := observers.Register(reg, a, out); err != nil {
		t.Fatalf("register observers: %v", err)
	}
	registry.MustRegister(reg, "Rejector", func(args ...any) (any, error) { return rejector{}, nil })
	registry.MustRegister(reg, "Forwarder", func(args ...any) (any, error) { return forwarder{d: a}, nil })
	registry.MustRegister(reg, "Broken", func(args ...any) (any, error) { return nil, errBroken })
	reg.Seal()
	if path != "" {
		if err := a.Init(path); err != nil {
			t.Fatalf("init: %v", err)
		}
	}
	srv := httptest.NewServer(httpapi.NewMux(a))
	t.Cleanup(func() {
		srv.Close()
		_ = a.Close()
	})
	return srv, a, out
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, rdr)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}
