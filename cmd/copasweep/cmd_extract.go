package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"copasweep/internal/results"
	"copasweep/internal/store"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <report.txt>...",
		Short: "Pivot steady-state reports into concentration and flux tables",
		Long: `Read CopasiSE steady-state reports and pivot them into two TSV tables,
one column per input file, one row per species or reaction. Files of
failed runs keep their column, filled with "na".

Examples:
  copasweep extract 'glyco_*.txt'
  copasweep extract run1.txt run2.txt --conc conc.tsv --flux flux.tsv
  copasweep extract 'glyco_*.txt' --db results.db`,
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

			agg := results.NewAggregate()
			for _, file := range expandGlobs(args) {
				data, err := os.ReadFile(file)
				if err != nil {
					env.rep.Problem(file, "%v", err)
					continue
				}
				values := results.ParseFile(string(data))
				if len(values.Concentrations) == 0 && len(values.Fluxes) == 0 {
					env.rep.Problem(file, "no steady state found in the file")
				}
				source := results.SourceName(file)
				agg.Add(source, values)

				if archive != nil {
					err := archive.SaveSteadyState(cmd.Context(), source,
						values.Concentrations, values.Fluxes)
					if err != nil {
						return fail(env.rep, file, 1, "%v", err)
					}
				}
			}

			concPath, _ := cmd.Flags().GetString("conc")
			if err := os.WriteFile(concPath, []byte(agg.ConcentrationTable()), 0o644); err != nil {
				return fail(env.rep, concPath, 1, "%v", err)
			}
			fluxPath, _ := cmd.Flags().GetString("flux")
			if err := os.WriteFile(fluxPath, []byte(agg.FluxTable()), 0o644); err != nil {
				return fail(env.rep, fluxPath, 1, "%v", err)
			}

			fmt.Printf("Wrote %s and %s from %d files.\n", concPath, fluxPath, len(agg.Sources()))
			return nil
		},
	}

	cmd.Flags().String("conc", "conc_table.tsv", "Concentration table output file")
	cmd.Flags().String("flux", "flux_table.tsv", "Flux table output file")
	addArchiveFlag(cmd)
	return cmd
}

// addArchiveFlag registers the --db flag shared by the digesting commands.
func addArchiveFlag(cmd *cobra.Command) {
	cmd.Flags().String("db", "", "Also archive the values in this SQLite database")
}

// openArchive opens the results archive named by --db or the config; a
// nil store with nil error means archiving is off.
func openArchive(cmd *cobra.Command, env *runEnv) (*store.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = env.cfg.Database.Path
	}
	if path == "" {
		return nil, nil
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results archive: %w", err)
	}
	return s, nil
}
