package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"copasweep/internal/model"
	"copasweep/internal/sweep"
)

func newTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target <model.cps> <rows> <cols>",
		Short: "Prepare and run one model copy per scan cell",
		Long: `Prepare one model copy per scan cell and hand the batch to CopasiSE.

Rows and cols are comma-separated entity names or reference numbers; the
keyword "all" expands to the whole axis. Which entity list feeds which
axis follows the analysis type the model's optimization objective is set
up for: concentration control (metabolites x reactions), flux control
(reactions x reactions, skipping the diagonal) or elasticities
(reactions x metabolites).

Examples:
  copasweep target glyco.cps all all
  copasweep target glyco.cps Glc,G6P HK --jobs 4
  copasweep target glyco.cps all all --jobarray --norun`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			norun, _ := cmd.Flags().GetBool("norun")
			jobArray, _ := cmd.Flags().GetBool("jobarray")
			if jobArray {
				// Array jobs run elsewhere; preparing and launching in one
				// process would race with the array's own scheduling.
				norun = true
			}

			doc, err := loadModel(env, args[0])
			if err != nil {
				return err
			}

			reactions, err := doc.Reactions()
			if err != nil {
				return fail(env.rep, doc.Path(), 1, "%v", err)
			}

			items, notes, err := sweep.Plan(sweep.Config{
				ModelBase:   strings.TrimSuffix(doc.Path(), filepath.Ext(doc.Path())),
				Analysis:    doc.AnalysisType(),
				Reactions:   reactions,
				Metabolites: doc.Metabolites(),
				Rows:        strings.Split(args[1], ","),
				Cols:        strings.Split(args[2], ","),
				JobArray:    jobArray,
			})
			if err != nil {
				if errors.Is(err, sweep.ErrUnknownAnalysis) {
					return fail(env.rep, doc.Path(), exitUnknownAnalysis, "%v", err)
				}
				return fail(env.rep, doc.Path(), 1, "%v", err)
			}
			for _, note := range notes {
				env.rep.Problem(doc.Path(), "%s", note)
			}

			var files []string
			for _, it := range items {
				cell, err := model.Parse(doc.Path(), doc.Content())
				if err != nil && !errors.As(err, new(*model.UnsupportedVersionError)) {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}

				if n, err := cell.SetTargetIndices(it.Row, it.Col); err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				} else if n > 1 {
					env.rep.Problem(doc.Path(), "more than one optimization objective was changed")
				}
				if _, err := cell.SetSubtaskMCA(); err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				report, _, err := cell.SetReportFile(it.Base + ".txt")
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}

				saved, err := cell.Save(it.Base + ".cps")
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				files = append(files, saved)

				env.trace.Log(map[string]any{
					"event":  "cell_prepared",
					"model":  saved,
					"report": report,
					"row":    it.RowName,
					"col":    it.ColName,
				})
			}

			if len(files) == 0 {
				env.rep.Problem(doc.Path(), "no scan cells left to prepare")
				return nil
			}
			if norun {
				return nil
			}
			return launchBatch(cmd, env, doc, files)
		},
	}

	cmd.Flags().Bool("norun", false, "Prepare the model copies but do not run CopasiSE")
	cmd.Flags().Bool("jobarray", false, "Number the copies for an array job (implies --norun)")
	addLaunchFlags(cmd)
	return cmd
}
