package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"eventd/internal/config"
)

const loggerOnlyConfig = `<?xml version="1.0"?>
<config>
    <events>
        <language_learned>
            <observers>
                <language_logger>
                    <class>Logger</class>
                    <method>logLearnedLanguage</method>
                </language_logger>
            </observers>
        </language_learned>
    </events>
</config>`

const unknownClassConfig = `<?xml version="1.0"?>
<config>
    <events>
        <order_placed>
            <observers>
                <audit>
                    <class>Auditor</class>
                    <method>record</method>
                </audit>
            </observers>
        </order_placed>
    </events>
</config>`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg := &cliConfig{ConfigPath: config.DefaultPath, LogLevel: "error", LogFormat: "json"}
	root := buildRootCmd(cfg, &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDispatchCmd(t *testing.T) {
	path := writeTempFile(t, "events.xml", loggerOnlyConfig)
	out, _, err := execute(t, "dispatch", "language_learned", "--config", path, "--data", "language=french")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if out != "Logger  says: Hey, someone learned french language!\n" {
		t.Fatalf("stdout=%q", out)
	}
}

func TestDispatchCmd_NoObservers(t *testing.T) {
	path := writeTempFile(t, "events.xml", loggerOnlyConfig)
	out, errOut, err := execute(t, "dispatch", "nobody_listens", "--config", path)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if out != "" || !strings.Contains(errOut, "has no observers") {
		t.Fatalf("stdout=%q stderr=%q", out, errOut)
	}
}

func TestDispatchCmd_UnknownClass(t *testing.T) {
	path := writeTempFile(t, "events.xml", unknownClassConfig)
	_, _, err := execute(t, "dispatch", "order_placed", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "Auditor") {
		t.Fatalf("expected unknown class error, got %v", err)
	}
}

func TestDispatchCmd_BadData(t *testing.T) {
	path := writeTempFile(t, "events.xml", loggerOnlyConfig)
	if _, _, err := execute(t, "dispatch", "language_learned", "--config", path, "--data", "oops"); err == nil {
		t.Fatal("expected --data error")
	}
	if _, _, err := execute(t, "dispatch", "--config", path); err == nil {
		t.Fatal("expected missing event argument error")
	}
}

func TestDispatchCmd_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "dispatch", "x", "--config", filepath.Join(t.TempDir(), "missing.xml"))
	if !config.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestValidateCmd(t *testing.T) {
	out, _, err := execute(t, "validate", "--config", "../../examples/demo.xml")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "ok (1 events, 2 bindings, developer_mode=true)") {
		t.Fatalf("stdout=%q", out)
	}
}

func TestValidateCmd_UnknownClass(t *testing.T) {
	path := writeTempFile(t, "events.xml", unknownClassConfig)
	out, _, err := execute(t, "validate", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "1 unresolved") {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(out, "Auditor") {
		t.Fatalf("stdout=%q", out)
	}
}

func TestDemoCmd(t *testing.T) {
	for _, path := range []string{"../../examples/demo.xml", "../../examples/demo.yaml"} {
		out, _, err := execute(t, "demo", "--config", path, "--learn", "english,german")
		if err != nil {
			t.Fatalf("%s: demo: %v", path, err)
		}
		want := "Learner says: I know ukrainian\n\n" +
			"Logger  says: Hey, someone learned english language!\n" +
			"Learner says: I know ukrainian, english\n\n" +
			"Logger  says: Hey, someone learned german language!\n" +
			"Learner says: I know ukrainian, english, german\n\n"
		if out != want {
			t.Fatalf("%s: unexpected transcript:\n%s", path, out)
		}
	}
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "validate", "--config", "../../examples/demo.xml", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestCompletionCmd(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "eventd") {
		t.Fatalf("completion output does not mention eventd")
	}
}

func TestDefaultCLIConfig_Env(t *testing.T) {
	t.Setenv("EVENTD_CONFIG", "/etc/eventd/events.toml")
	t.Setenv("EVENTD_LOG_LEVEL", "debug")
	cfg := defaultCLIConfig()
	if cfg.ConfigPath != "/etc/eventd/events.toml" || cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	a, err := newApp(zerolog.Nop(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	a.InitTable(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, a, zerolog.Nop(), "", serveOptions{Addr: "127.0.0.1:0", Shutdown: time.Second})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not stop")
	}
	if a.Ready() {
		t.Fatal("table should be dropped on shutdown")
	}
}
