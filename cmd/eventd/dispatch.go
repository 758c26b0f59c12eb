package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newDispatchCmd(cfg *cliConfig, stdout, stderr io.Writer) *cobra.Command {
	var (
		pairs   []string
		jsonObj string
	)
	cmd := &cobra.Command{
		Use:   "dispatch <event>",
		Short: "Dispatch one event through the configured observers",
		Example: "  eventd dispatch language_learned --data language=english\n" +
			"  eventd dispatch order_placed --json '{\"total\": 42}'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseData(jsonObj, pairs)
			if err != nil {
				return err
			}
			a, _, err := setup(cfg, stdout, stderr)
			if err != nil {
				return err
			}
			defer a.Close()
			name := args[0]
			n := 0
			if def, ok := a.Table().Lookup(name); ok {
				n = len(def.Observers)
			}
			if err := a.Dispatch(cmd.Context(), name, data); err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintf(stderr, "event %s has no observers\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "data", "d", nil, "Event data as key=value (repeatable)")
	cmd.Flags().StringVar(&jsonObj, "json", "", "Event data as a JSON object")
	return cmd
}
