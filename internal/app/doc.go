// Package app is the application context of the event system: it owns the
// published event table, the singleton cache and the type registry, and
// dispatches events to configured observers. It is structured into small
// files by concern:
//
//   - app.go: core App type, constructors, Init/InitTable, teardown.
//   - config.go: Config and NewWithConfig defaults.
//   - errors.go: FactoryError/DispatchError and helpers (IsUnknownClass, IsMissingHandler).
//   - factory.go: Create and GetSingleton.
//   - dispatch.go: Dispatch and per-binding delivery.
//   - context.go: dispatch id and nesting depth carried on the context.
//   - validate.go: startup check of bindings against the registry.
//   - trace.go, trace_memory.go: TracePublisher hook and its in-memory sink.
//   - metrics.go: Prometheus collectors.
//
// Dispatch is synchronous. A handler may dispatch again; the nested dispatch
// runs to completion before the outer one moves to its next binding, so the
// observed order is depth-first.
package app
