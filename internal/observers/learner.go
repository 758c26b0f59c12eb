package observers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"eventd/internal/event"
)

// ErrNativeLanguage is returned when a Learner is built without its native
// language.
var ErrNativeLanguage = errors.New("learner needs a native language")

// Learner keeps the languages it knows. Configured as a singleton observer
// of language_learned, the same instance both raises and handles the event.
type Learner struct {
	d   event.Dispatcher
	out io.Writer

	mu      sync.Mutex
	learned []string
}

func newLearner(d event.Dispatcher, out io.Writer, args ...any) (*Learner, error) {
	if len(args) == 0 {
		return nil, ErrNativeLanguage
	}
	native, ok := args[0].(string)
	if !ok || native == "" {
		return nil, ErrNativeLanguage
	}
	fmt.Fprintf(out, "Learner says: I know %s\n\n", native)
	return &Learner{d: d, out: out, learned: []string{native}}, nil
}

// Languages returns the known languages, native first.
func (l *Learner) Languages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.learned...)
}

// LearnLanguages learns each language in turn and raises language_learned
// after each one. It stops at the first dispatch error.
func (l *Learner) LearnLanguages(ctx context.Context, languages ...string) error {
	for _, lang := range languages {
		l.mu.Lock()
		l.learned = append(l.learned, lang)
		l.mu.Unlock()
		err := l.d.Dispatch(ctx, EventLanguageLearned, map[string]any{
			"language": lang,
			"learner":  l,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Handler implements event.Observer.
func (l *Learner) Handler(method string) (event.Handler, bool) {
	switch method {
	case "printLearnedLanguages":
		return l.printLearnedLanguages, true
	}
	return nil, false
}

func (l *Learner) printLearnedLanguages(ctx context.Context, ev *event.Event) error {
	_, err := fmt.Fprintf(l.out, "Learner says: I know %s\n\n", strings.Join(l.Languages(), ", "))
	return err
}
