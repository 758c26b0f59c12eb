package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"eventd/internal/config"
	"eventd/internal/event"
)

// Dispatch delivers an event to every observer configured for name, in
// declaration order. Each observer is resolved through GetSingleton or
// Create (without arguments) and receives its own Event built from data.
//
// An unconfigured name is a no-op. A handler error is logged and delivery
// continues. A missing handler is skipped, unless the table enables developer
// mode, in which case Dispatch returns a DispatchError and the remaining
// observers are not called. Factory errors abort the same way, and so does a
// handler returning a FactoryError or DispatchError it got from a nested
// Dispatch.
func (a *App) Dispatch(ctx context.Context, name string, data map[string]any) error {
	t := a.table.Load()
	def, ok := t.Lookup(name)
	if !ok {
		return nil
	}

	ctx, info := enterDispatch(ctx)
	log := a.log.With().
		Str("event", name).
		Str("dispatch_id", info.id).
		Int("depth", info.depth).
		Logger()
	if info.parentID != "" {
		log = log.With().Str("parent_id", info.parentID).Logger()
	}

	start := time.Now()
	dispatchTotal.WithLabelValues(name).Inc()
	defer func() {
		dispatchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	log.Debug().Int("observers", len(def.Observers)).Msg("dispatch start")
	a.publish(TraceDispatchStart, name, info, map[string]any{"observers": len(def.Observers)})

	for _, b := range def.Observers {
		if err := a.deliver(ctx, log, t, name, b, data, info); err != nil {
			dispatchErrorsTotal.WithLabelValues(errorReason(err)).Inc()
			log.Error().Err(err).Str("observer", b.Key).Msg("dispatch aborted")
			a.publish(TraceDispatchAbort, name, info, map[string]any{
				"observer": b.Key,
				"error":    err.Error(),
			})
			return err
		}
	}

	log.Debug().Dur("dur", time.Since(start)).Msg("dispatch done")
	a.publish(TraceDispatchDone, name, info, nil)
	return nil
}

// deliver resolves and invokes a single binding. Only errors that must abort
// the dispatch are returned.
func (a *App) deliver(ctx context.Context, log zerolog.Logger, t *config.Table, name string, b config.Binding, data map[string]any, info dispatchInfo) error {
	var (
		inst any
		err  error
	)
	if b.Singleton {
		inst, err = a.GetSingleton(b.Class)
	} else {
		inst, err = a.Create(b.Class)
	}
	if err != nil {
		return err
	}

	ev := event.New(name, data)
	fields := map[string]any{"observer": b.Key, "class": b.Class, "method": b.Method}

	h, ok := event.Lookup(inst, b.Method)
	if !ok {
		if t.DeveloperMode {
			return &DispatchError{Reason: ReasonMissingHandler, Event: name, Class: b.Class, Method: b.Method}
		}
		observerInvocationsTotal.WithLabelValues(name, outcomeSkipped).Inc()
		log.Debug().Str("observer", b.Key).Str("class", b.Class).Str("method", b.Method).Msg("observer has no such method, skipped")
		a.publish(TraceObserverSkipped, name, info, fields)
		return nil
	}

	if herr := h(ctx, ev); herr != nil {
		observerInvocationsTotal.WithLabelValues(name, outcomeFailed).Inc()
		fields["error"] = herr.Error()
		a.publish(TraceObserverFailed, name, info, fields)
		// a nested dispatch that aborted aborts this one too
		if abortsDispatch(herr) {
			return herr
		}
		log.Warn().Err(herr).Str("observer", b.Key).Str("class", b.Class).Str("method", b.Method).Msg("observer failed")
		return nil
	}
	observerInvocationsTotal.WithLabelValues(name, outcomeOK).Inc()
	a.publish(TraceObserverInvoked, name, info, fields)
	return nil
}

func (a *App) publish(trace, name string, info dispatchInfo, fields map[string]any) {
	a.tracer.Publish(Trace{
		Name:       trace,
		Event:      name,
		DispatchID: info.id,
		Depth:      info.depth,
		Fields:     fields,
	})
}
