package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"copasweep/internal/sweep"
)

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize <result.txt>...",
		Short: "Group scan objective values into per-scan summaries",
		Long: `Collect the objective function values from optimization result files
named <scan>_<row>_<col>.txt and write one <scan>_summary.txt per scan,
each line "row<TAB>col<TAB>value". Files whose names do not follow the
convention are skipped with a warning.

Examples:
  copasweep summarize 'glyco_*_*.txt'
  copasweep summarize 'glyco_*_*.txt' --db results.db`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			archive, err := openArchive(cmd, env)
			if err != nil {
				return err
			}
			if archive != nil {
				defer archive.Close()
			}

			summary := sweep.NewSummary()
			for _, file := range expandGlobs(args) {
				data, err := os.ReadFile(file)
				if err != nil {
					env.rep.Problem(file, "%v", err)
					continue
				}
				if !summary.Add(file, string(data)) {
					env.rep.Problem(file, "the filename does not follow the <scan>_<row>_<col>.txt convention")
				}
			}

			for _, scan := range summary.Scans() {
				out := sweep.SummaryFileName(scan)
				if err := os.WriteFile(out, []byte(summary.Render(scan)), 0o644); err != nil {
					return fail(env.rep, out, 1, "%v", err)
				}
				fmt.Printf("Wrote %s with %d values.\n", out, len(summary.Triples(scan)))

				if archive != nil {
					for _, t := range summary.Triples(scan) {
						if err := archive.SaveObjective(cmd.Context(), scan, t.Row, t.Col, t.Value); err != nil {
							return fail(env.rep, out, 1, "%v", err)
						}
					}
				}
			}
			return nil
		},
	}

	addArchiveFlag(cmd)
	return cmd
}
