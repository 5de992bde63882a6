package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"copasweep/internal/model"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.cps>",
		Short: "Describe a COPASI model file",
		Long: `Describe a COPASI model file: title, file version, entity counts and
the analysis type its optimization objective is set up for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			doc, err := loadModel(env, args[0])
			if err != nil {
				return err
			}

			title, ok := doc.Title()
			if !ok {
				env.rep.Problem(doc.Path(), "the model has no name")
			}

			reactions, err := doc.Reactions()
			if err != nil {
				return fail(env.rep, doc.Path(), 1, "%v", err)
			}
			metabolites := doc.Metabolites()

			fmt.Println(doc.String())
			fmt.Printf("Title: %s\n", title)

			fmt.Println("\nReactions (reference order):")
			for i, name := range reactions {
				fmt.Printf("  %3d  %s\n", i, name)
			}
			fmt.Println("\nMetabolites (reference order):")
			for i, name := range metabolites {
				fmt.Printf("  %3d  %s\n", i, name)
			}

			switch analysis := doc.AnalysisType(); analysis {
			case model.AnalysisUnknown:
				env.rep.Problem(doc.Path(), "the analysis type of the optimization objective could not be determined")
			default:
				fmt.Printf("\nAnalysis type: %s\n", analysis)
			}
			return nil
		},
	}
}
