// Package event defines the payload handed to observers and the contract an
// observer type implements to expose its handlers.
package event

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Event carries the name of a dispatched event and the caller's data.
// The name is kept apart from the data, so a data key called "name" never
// changes Name().
type Event struct {
	name string
	data map[string]any
}

// New builds an event named name over a shallow copy of data.
func New(name string, data map[string]any) *Event {
	cp := make(map[string]any, len(data))
	for k, v := range data {
		cp[k] = v
	}
	return &Event{name: name, data: cp}
}

// Name returns the dispatched event name.
func (e *Event) Name() string { return e.name }

// Get returns the value stored under key.
func (e *Event) Get(key string) (any, bool) {
	v, ok := e.data[key]
	return v, ok
}

// Value returns the value under key, or nil.
func (e *Event) Value(key string) any { return e.data[key] }

// Has reports whether key was supplied.
func (e *Event) Has(key string) bool {
	_, ok := e.data[key]
	return ok
}

// String returns the value under key formatted as text. Absent keys yield "".
func (e *Event) String(key string) string {
	switch v := e.data[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value under key as an int. Absent or non-numeric values
// yield 0.
func (e *Event) Int(key string) int {
	switch v := e.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// Keys returns the data keys in lexicographic order.
func (e *Event) Keys() []string {
	out := make([]string, 0, len(e.data))
	for k := range e.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Data returns a copy of the caller-supplied data.
func (e *Event) Data() map[string]any {
	cp := make(map[string]any, len(e.data))
	for k, v := range e.data {
		cp[k] = v
	}
	return cp
}

// MarshalJSON encodes the event as {"name": ..., "data": {...}}.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string         `json:"name"`
		Data map[string]any `json:"data"`
	}{Name: e.name, Data: e.data})
}
