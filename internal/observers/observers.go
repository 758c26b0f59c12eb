// Package observers holds the demo observers: a Learner that announces every
// language it learns and a Logger that reports those announcements.
package observers

import (
	"io"

	"eventd/internal/event"
	"eventd/internal/registry"
)

// Class names as used in configuration.
const (
	ClassLearner = "Learner"
	ClassLogger  = "Logger"
)

// EventLanguageLearned is raised by Learner for every new language.
const EventLanguageLearned = "language_learned"

// Register adds the demo classes to reg. Learners raise events through d and
// both classes write to out.
func Register(reg *registry.Registry, d event.Dispatcher, out io.Writer) error {
	if err := reg.Register(ClassLearner, func(args ...any) (any, error) {
		l, err := newLearner(d, out, args...)
		if err != nil {
			return nil, err
		}
		return l, nil
	}); err != nil {
		return err
	}
	return reg.Register(ClassLogger, func(args ...any) (any, error) {
		return &Logger{out: out}, nil
	})
}
