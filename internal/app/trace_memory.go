package app

import "sync"

// MemoryTracer stores traces in memory for tests and diagnostics.
type MemoryTracer struct {
	mu     sync.Mutex
	traces []Trace
}

func NewMemoryTracer() *MemoryTracer { return &MemoryTracer{} }

func (p *MemoryTracer) Publish(t Trace) {
	p.mu.Lock()
	p.traces = append(p.traces, t)
	p.mu.Unlock()
}

func (p *MemoryTracer) Traces() []Trace {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Trace, len(p.traces))
	copy(out, p.traces)
	return out
}

// Names returns the trace names in publication order.
func (p *MemoryTracer) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.traces))
	for i, t := range p.traces {
		out[i] = t.Name
	}
	return out
}
