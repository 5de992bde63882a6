package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"copasweep/internal/model"
)

func newTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune <model.cps>",
		Short: "Edit the optimization setup of a model file",
		Long: `Apply targeted edits to the optimization task of a model file and save
the result. Every edit addresses its target by name; an edit whose
pattern matches nothing, or matches ambiguously where one match is
required, fails without touching the file.

Item bounds are given as name=lower,start,upper; kinetic parameter items
and edits use name:parameter.

Examples:
  copasweep tune glyco.cps --method PS -o glyco_ps.cps
  copasweep tune glyco.cps --maximize --target-type uFCC -o out.cps
  copasweep tune glyco.cps --item "Vmax=1e-06,0.5,1e+06" -o out.cps
  copasweep tune glyco.cps --delete-item HK:k1 --set-param HK:k1=0.3 -o out.cps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			maximize, _ := cmd.Flags().GetBool("maximize")
			minimize, _ := cmd.Flags().GetBool("minimize")
			if maximize && minimize {
				return errors.New("--maximize and --minimize exclude each other")
			}

			doc, err := loadModel(env, args[0])
			if err != nil {
				return err
			}

			warn := func(n int, what string) {
				if n > 1 {
					env.rep.Problem(doc.Path(), "more than one %s was changed", what)
				}
			}

			if method, _ := cmd.Flags().GetString("method"); method != "" {
				if err := doc.SetMethod(method); err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
			}
			if maximize || minimize {
				n, err := doc.SetMaximize(maximize)
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				warn(n, "maximize flag")
			}
			if kind, _ := cmd.Flags().GetString("target-type"); kind != "" {
				n, err := doc.SetTargetType(kind)
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				warn(n, "optimization target")
			}
			if mca, _ := cmd.Flags().GetBool("subtask-mca"); mca {
				n, err := doc.SetSubtaskMCA()
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				warn(n, "subtask")
			}

			items, _ := cmd.Flags().GetStringArray("item")
			for _, spec := range items {
				item, err := parseItemSpec(spec)
				if err != nil {
					return err
				}
				n, err := doc.SetItemBounds(item.name, item.lower, item.start, item.upper, item.parameter)
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				warn(n, "optimization item")
			}

			deletes, _ := cmd.Flags().GetStringArray("delete-item")
			for _, spec := range deletes {
				name, parameter := splitNameParameter(spec)
				if err := doc.DeleteItem(name, parameter); err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
			}

			params, _ := cmd.Flags().GetStringArray("set-param")
			for _, spec := range params {
				reaction, parameter, value, err := parseParamSpec(spec)
				if err != nil {
					return err
				}
				if _, err := doc.SetParameter(reaction, parameter, value); err != nil {
					// Parameter scans shrug off a missing parameter.
					var nf *model.TargetNotFoundError
					if errors.As(err, &nf) {
						env.rep.Problem(doc.Path(), "%v", err)
						continue
					}
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
			}

			if report, _ := cmd.Flags().GetString("report"); report != "" {
				sanitized, n, err := doc.SetReportFile(report)
				if err != nil {
					return fail(env.rep, doc.Path(), 1, "%v", err)
				}
				warn(n, "report target")
				if sanitized != report {
					env.rep.Problem(doc.Path(), "report filename was sanitized to %q", sanitized)
				}
			}

			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				out = strings.TrimSuffix(doc.Path(), filepath.Ext(doc.Path())) + "_tuned.cps"
			}
			saved, err := doc.Save(out)
			if err != nil {
				return fail(env.rep, doc.Path(), 1, "%v", err)
			}

			env.trace.Log(map[string]any{
				"event":  "model_tuned",
				"model":  doc.Path(),
				"output": saved,
			})
			return nil
		},
	}

	cmd.Flags().String("method", "", "Optimization method to install: EP or PS")
	cmd.Flags().Bool("maximize", false, "Maximize the objective")
	cmd.Flags().Bool("minimize", false, "Minimize the objective")
	cmd.Flags().String("target-type", "", "Optimization target type: CCC, FCC, E, uCCC, uFCC, uE")
	cmd.Flags().Bool("subtask-mca", false, "Point the optimization subtask at Metabolic Control Analysis")
	cmd.Flags().StringArray("item", nil, "Set bounds of an optimization item: name[:parameter]=lower,start,upper (repeatable)")
	cmd.Flags().StringArray("delete-item", nil, "Delete an optimization item: name[:parameter] (repeatable)")
	cmd.Flags().StringArray("set-param", nil, "Set a kinetic parameter: reaction:parameter=value (repeatable)")
	cmd.Flags().String("report", "", "Report target filename")
	cmd.Flags().StringP("output", "o", "", "Output file (default: <model>_tuned.cps)")
	return cmd
}

type itemSpec struct {
	name, parameter     string
	lower, start, upper string
}

// parseItemSpec parses "name[:parameter]=lower,start,upper".
func parseItemSpec(spec string) (itemSpec, error) {
	target, bounds, ok := strings.Cut(spec, "=")
	if !ok {
		return itemSpec{}, fmt.Errorf("item %q: want name[:parameter]=lower,start,upper", spec)
	}
	parts := strings.Split(bounds, ",")
	if len(parts) != 3 {
		return itemSpec{}, fmt.Errorf("item %q: want three comma-separated bounds", spec)
	}
	name, parameter := splitNameParameter(target)
	return itemSpec{
		name:      name,
		parameter: parameter,
		lower:     parts[0],
		start:     parts[1],
		upper:     parts[2],
	}, nil
}

// splitNameParameter splits "name[:parameter]"; without a colon the
// parameter stays empty (a global value item).
func splitNameParameter(s string) (name, parameter string) {
	name, parameter, _ = strings.Cut(s, ":")
	return name, parameter
}

// parseParamSpec parses "reaction:parameter=value".
func parseParamSpec(spec string) (reaction, parameter, value string, err error) {
	target, value, ok := strings.Cut(spec, "=")
	if !ok {
		return "", "", "", fmt.Errorf("parameter %q: want reaction:parameter=value", spec)
	}
	reaction, parameter, ok = strings.Cut(target, ":")
	if !ok || reaction == "" || parameter == "" {
		return "", "", "", fmt.Errorf("parameter %q: want reaction:parameter=value", spec)
	}
	return reaction, parameter, value, nil
}
