package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventd/internal/app"
	"eventd/internal/observers"
	"eventd/internal/registry"
)

// buildRootCmd constructs the command tree. Subcommands write their results
// to stdout and logs to stderr.
func buildRootCmd(cfg *cliConfig, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "eventd",
		Short:         "Configuration-driven event dispatcher",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.ConfigPath, "config", "c", cfg.ConfigPath, "Event configuration document (defaults EVENTD_CONFIG or config.xml)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error (defaults EVENTD_LOG_LEVEL or info)")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console|json (defaults EVENTD_LOG_FORMAT or console)")

	root.AddCommand(
		newServeCmd(cfg, stderr),
		newDispatchCmd(cfg, stdout, stderr),
		newValidateCmd(cfg, stdout, stderr),
		newDemoCmd(cfg, stdout, stderr),
	)

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(stdout) }})
	root.AddCommand(completionCmd)

	return root
}

// newApp wires the registry, the built-in observer classes and an App that
// logs through log. Observers print to out.
func newApp(log zerolog.Logger, out io.Writer) (*app.App, error) {
	reg := registry.New()
	a := app.NewWithConfig(app.Config{Registry: reg, Logger: &log})
	if err := observers.Register(reg, a, out); err != nil {
		return nil, err
	}
	reg.Seal()
	return a, nil
}

// setup builds the logger and App for a subcommand and loads the configured
// event document.
func setup(cfg *cliConfig, out, logOut io.Writer) (*app.App, zerolog.Logger, error) {
	log, err := newLogger(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return nil, log, err
	}
	a, err := newApp(log, out)
	if err != nil {
		return nil, log, err
	}
	if err := a.Init(cfg.ConfigPath); err != nil {
		return nil, log, err
	}
	return a, log, nil
}
