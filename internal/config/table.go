package config

import "sort"

// Binding wires one event to one observer method.
// Key identifies the binding within its event and is only used in diagnostics.
type Binding struct {
	Key       string `json:"key"`
	Class     string `json:"class"`
	Method    string `json:"method"`
	Singleton bool   `json:"singleton"`
}

// EventDefinition lists the observers of a single event in declaration order.
type EventDefinition struct {
	Name      string    `json:"name"`
	Observers []Binding `json:"observers"`
}

// Table is the parsed form of an event configuration document.
// It is built once by Load/Parse and treated as read-only afterwards.
type Table struct {
	Events        map[string]*EventDefinition
	DeveloperMode bool
	// Source is the path the table was read from, if any.
	Source string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{Events: make(map[string]*EventDefinition)}
}

// Lookup returns the definition registered for name.
func (t *Table) Lookup(name string) (*EventDefinition, bool) {
	if t == nil {
		return nil, false
	}
	def, ok := t.Events[name]
	return def, ok
}

// Names returns all configured event names in lexicographic order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.Events))
	for name := range t.Events {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Bindings returns the total number of bindings across all events.
func (t *Table) Bindings() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, def := range t.Events {
		n += len(def.Observers)
	}
	return n
}

// ParseBool applies the configuration rule for boolean nodes: only the
// literals "1" and "true" are true. Anything else, including an absent node,
// is false.
func ParseBool(s string) bool {
	return s == "1" || s == "true"
}
