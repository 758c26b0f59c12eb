package observers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"eventd/internal/app"
	"eventd/internal/config"
	"eventd/internal/registry"
)

func newDemoApp(t *testing.T, path string) (*app.App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	reg := registry.New()
	a := app.New(reg)
	if err := Register(reg, a, &out); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := a.Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	return a, &out
}

const wantTranscript = `Learner says: I know ukrainian

Logger  says: Hey, someone learned english language!
Learner says: I know ukrainian, english

Logger  says: Hey, someone learned german language!
Learner says: I know ukrainian, english, german

`

func TestDemo_LearnerHandlesItsOwnEvents(t *testing.T) {
	for _, path := range []string{"../../examples/demo.xml", "../../examples/demo.yaml"} {
		a, out := newDemoApp(t, path)
		v, err := a.GetSingleton(ClassLearner, "ukrainian")
		if err != nil {
			t.Fatalf("%s: singleton: %v", path, err)
		}
		learner := v.(*Learner)
		if err := learner.LearnLanguages(context.Background(), "english", "german"); err != nil {
			t.Fatalf("%s: learn: %v", path, err)
		}
		if out.String() != wantTranscript {
			t.Fatalf("%s: unexpected output:\n%s", path, out.String())
		}
		if got := learner.Languages(); len(got) != 3 || got[0] != "ukrainian" {
			t.Fatalf("%s: languages=%v", path, got)
		}
	}
}

func TestDemo_LearnerWithoutNativeLanguage(t *testing.T) {
	a, _ := newDemoApp(t, "../../examples/demo.xml")
	// the singleton was never created with arguments, so dispatch has to
	// construct it bare and fails
	err := a.Dispatch(context.Background(), EventLanguageLearned, map[string]any{"language": "german"})
	if !app.IsConstruction(err) || !errors.Is(err, ErrNativeLanguage) {
		t.Fatalf("expected construction error, got %v", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := registry.New()
	a := app.New(reg)
	if err := Register(reg, a, &bytes.Buffer{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(reg, a, &bytes.Buffer{}); !errors.Is(err, registry.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLogger_UnknownMethod(t *testing.T) {
	var out bytes.Buffer
	reg := registry.New()
	a := app.New(reg)
	if err := Register(reg, a, &out); err != nil {
		t.Fatalf("register: %v", err)
	}
	tbl := config.NewTable()
	tbl.Events["e"] = &config.EventDefinition{Name: "e", Observers: []config.Binding{
		{Key: "l", Class: ClassLogger, Method: "shout"},
	}}
	a.InitTable(tbl)
	if err := a.Dispatch(context.Background(), "e", nil); err != nil {
		t.Fatalf("lenient mode should skip: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
