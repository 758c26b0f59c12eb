package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newValidateCmd(cfg *cliConfig, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the event document and check every binding resolves to a known class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := setup(cfg, stdout, stderr)
			if err != nil {
				return err
			}
			defer a.Close()
			problems := a.Validate()
			for _, p := range problems {
				fmt.Fprintln(stdout, "-", p)
			}
			t := a.Table()
			if len(problems) > 0 {
				return fmt.Errorf("%s: %d unresolved binding(s)", t.Source, len(problems))
			}
			fmt.Fprintf(stdout, "%s: ok (%d events, %d bindings, developer_mode=%t)\n", t.Source, len(t.Events), t.Bindings(), t.DeveloperMode)
			return nil
		},
	}
}
