package app

// Trace names published by App.
const (
	TraceConfigLoaded    = "config_loaded"
	TraceDispatchStart   = "dispatch_start"
	TraceObserverInvoked = "observer_invoked"
	TraceObserverFailed  = "observer_failed"
	TraceObserverSkipped = "observer_skipped"
	TraceDispatchAbort   = "dispatch_abort"
	TraceDispatchDone    = "dispatch_done"
)

// Trace is one step of a dispatch as seen by the App.
type Trace struct {
	Name       string
	Event      string
	DispatchID string
	Depth      int
	Fields     map[string]any
}

// TracePublisher receives traces from the App. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type TracePublisher interface {
	Publish(Trace)
}

// noopTracer is the default; it drops traces.
type noopTracer struct{}

func (noopTracer) Publish(Trace) {}
