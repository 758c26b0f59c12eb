package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"eventd/internal/observers"
)

const demoConfigPath = "examples/demo.xml"

func newDemoCmd(cfg *cliConfig, stdout, stderr io.Writer) *cobra.Command {
	var (
		native    string
		languages []string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the language learner demo",
		Long: "Creates the Learner singleton and lets it learn a few languages. Each one raises\n" +
			"language_learned, observed by the Logger and by the Learner itself.",
		Example: "  eventd demo\n  eventd demo --config examples/demo.yaml --native polish --learn french,italian",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := *cfg
			if !cmd.Flags().Changed("config") && envStr("EVENTD_CONFIG", "") == "" {
				run.ConfigPath = demoConfigPath
			}
			a, _, err := setup(&run, stdout, stderr)
			if err != nil {
				return err
			}
			defer a.Close()
			inst, err := a.GetSingleton(observers.ClassLearner, native)
			if err != nil {
				return err
			}
			learner, ok := inst.(*observers.Learner)
			if !ok {
				return fmt.Errorf("class %s is not a learner", observers.ClassLearner)
			}
			return learner.LearnLanguages(cmd.Context(), languages...)
		},
	}
	cmd.Flags().StringVar(&native, "native", "ukrainian", "Native language of the learner")
	cmd.Flags().StringSliceVar(&languages, "learn", []string{"english", "german", "russian"}, "Languages to learn, in order")
	return cmd
}
