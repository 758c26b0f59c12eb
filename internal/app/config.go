package app

import (
	"github.com/rs/zerolog"

	"eventd/internal/registry"
)

// Config encapsulates the collaborators of an App.
type Config struct {
	// Registry resolves class names. A nil registry is replaced by an empty one.
	Registry *registry.Registry
	// Logger receives structured dispatch logs. Zero value disables logging.
	Logger *zerolog.Logger
	// Tracer receives dispatch lifecycle records. Nil drops them.
	Tracer TracePublisher
}

// NewWithConfig constructs an App from Config.
func NewWithConfig(cfg Config) *App {
	a := &App{
		reg:        cfg.Registry,
		singletons: make(map[string]any),
		tracer:     cfg.Tracer,
	}
	if a.reg == nil {
		a.reg = registry.New()
	}
	if cfg.Logger != nil {
		a.log = *cfg.Logger
	} else {
		a.log = zerolog.Nop()
	}
	if a.tracer == nil {
		a.tracer = noopTracer{}
	}
	return a
}
