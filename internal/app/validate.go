package app

import "fmt"

// Validate checks every binding of the published table against the registry
// and returns one error per binding whose class is not registered, in event
// name and declaration order. Method names cannot be checked without building
// instances and are left to dispatch time.
func (a *App) Validate() []error {
	t := a.table.Load()
	if t == nil {
		return nil
	}
	var errs []error
	for _, name := range t.Names() {
		def := t.Events[name]
		for _, b := range def.Observers {
			if a.reg.Has(b.Class) {
				continue
			}
			errs = append(errs, fmt.Errorf("event %s observer %s: %w", name, b.Key,
				&FactoryError{Reason: ReasonUnknownClass, Class: b.Class}))
		}
	}
	return errs
}
