package event

import "context"

// Handler receives one event. A returned error is reported by the dispatcher
// but does not stop delivery to later observers.
type Handler func(ctx context.Context, ev *Event) error

// Observer exposes handlers by method name, the names used in configuration.
// Types that do not implement Observer expose no handlers at all.
type Observer interface {
	Handler(method string) (Handler, bool)
}

// Methods is a table-driven Observer.
type Methods map[string]Handler

// Handler implements Observer.
func (m Methods) Handler(method string) (Handler, bool) {
	h, ok := m[method]
	return h, ok && h != nil
}

// Lookup resolves method on an arbitrary instance.
func Lookup(instance any, method string) (Handler, bool) {
	obs, ok := instance.(Observer)
	if !ok {
		return nil, false
	}
	return obs.Handler(method)
}

// Dispatcher is the call surface observers use to raise further events.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, data map[string]any) error
}
