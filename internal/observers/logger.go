package observers

import (
	"context"
	"fmt"
	"io"

	"eventd/internal/event"
)

// Logger reports learned languages.
type Logger struct {
	out io.Writer
}

// Handler implements event.Observer.
func (l *Logger) Handler(method string) (event.Handler, bool) {
	if method == "logLearnedLanguage" {
		return l.logLearnedLanguage, true
	}
	return nil, false
}

func (l *Logger) logLearnedLanguage(ctx context.Context, ev *event.Event) error {
	_, err := fmt.Fprintf(l.out, "Logger  says: Hey, someone learned %s language!\n", ev.String("language"))
	return err
}
