package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newReplicateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replicate <model.cps> <count>",
		Short: "Run identical copies of one model",
		Long: `Write <count> copies of the model, each reporting to its own file, and
run them as one batch. Useful for repeating a stochastic optimization
with different random trajectories.

Examples:
  copasweep replicate glyco.cps 20
  copasweep replicate glyco.cps 20 --norun`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			count, err := strconv.Atoi(args[1])
			if err != nil || count < 1 {
				return fmt.Errorf("count must be a positive number, got %q", args[1])
			}

			doc, err := loadModel(env, args[0])
			if err != nil {
				return err
			}
			base := strings.TrimSuffix(doc.Path(), filepath.Ext(doc.Path()))

			var files []string
			for i := 1; i <= count; i++ {
				name := fmt.Sprintf("%s_%d", base, i)
				if _, _, err := doc.SetReportFile(name + ".txt"); err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				saved, err := doc.Save(name + ".cps")
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				files = append(files, saved)
			}

			env.trace.Log(map[string]any{
				"event": "replicates_prepared",
				"model": doc.Path(),
				"count": count,
			})

			if norun, _ := cmd.Flags().GetBool("norun"); norun {
				return nil
			}
			return launchBatch(cmd, env, doc, files)
		},
	}

	cmd.Flags().Bool("norun", false, "Prepare the model copies but do not run CopasiSE")
	addLaunchFlags(cmd)
	return cmd
}
