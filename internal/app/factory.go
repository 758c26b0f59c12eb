package app

import (
	"errors"

	"eventd/internal/registry"
)

// Create builds a new instance of class with the given constructor arguments.
func (a *App) Create(class string, args ...any) (any, error) {
	v, err := a.reg.Build(class, args...)
	if err != nil {
		if errors.Is(err, registry.ErrUnknown) {
			return nil, &FactoryError{Reason: ReasonUnknownClass, Class: class, Err: err}
		}
		return nil, &FactoryError{Reason: ReasonConstruction, Class: class, Err: err}
	}
	instancesCreated.WithLabelValues(class).Inc()
	return v, nil
}

// GetSingleton returns the cached instance of class, creating and caching it
// on first use. Arguments only matter for the call that creates the instance;
// later calls get the cached one whatever they pass.
//
// The constructor runs without the cache lock held, so constructors may ask
// for other singletons. Concurrent first calls for the same class may each
// construct an instance; the first one stored is kept and returned to all.
func (a *App) GetSingleton(class string, args ...any) (any, error) {
	a.mu.Lock()
	if v, ok := a.singletons[class]; ok {
		a.mu.Unlock()
		return v, nil
	}
	a.mu.Unlock()

	v, err := a.Create(class, args...)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if cur, ok := a.singletons[class]; ok {
		return cur, nil
	}
	a.singletons[class] = v
	singletonsCached.Inc()
	a.log.Debug().Str("class", class).Msg("singleton created")
	return v, nil
}
