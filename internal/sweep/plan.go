// Package sweep turns row and column selections into the per-cell work
// list of a control-coefficient scan, and groups the objective values
// such a scan produced back into per-scan summaries.
package sweep

import (
	"errors"
	"fmt"
	"strings"

	"copasweep/internal/model"
)

// ErrUnknownAnalysis reports that a model's objective expression names no
// recognized analysis type, so the row and column axes cannot be chosen.
var ErrUnknownAnalysis = errors.New("analysis type of the model could not be determined")

// allKeyword in a row or column selection expands to every entity of the
// axis.
const allKeyword = "all"

// Item is one scan cell: the objective indices to set and the name of the
// model copy that computes them.
type Item struct {
	Row, Col int
	RowName  string
	ColName  string
	Base     string
}

// Config describes one scan to plan.
type Config struct {
	// ModelBase is the model file name without the .cps extension; output
	// names derive from it.
	ModelBase string

	// Analysis selects which entity list feeds each axis.
	Analysis model.Analysis

	// Reactions and Metabolites are the model's entity lists in reference
	// order.
	Reactions   []string
	Metabolites []string

	// Rows and Cols are the user's selections, names or numbers, with
	// "all" expanding to the whole axis.
	Rows, Cols []string

	// JobArray appends a running counter to each base name so scans of
	// identically named cells stay distinct across array jobs.
	JobArray bool
}

// Plan expands the selections of cfg into scan items. Notes collects
// non-fatal observations: out-of-range indices (skipped), flux-control
// diagonal cells (skipped, they are 1 by definition) and entity names
// containing underscores (kept, but they break summary grouping later).
//
// An unknown analysis type or an unresolvable entity name is fatal.
func Plan(cfg Config) (items []Item, notes []string, err error) {
	var rowRefs, colRefs []string
	switch cfg.Analysis {
	case model.AnalysisCCC:
		rowRefs, colRefs = cfg.Metabolites, cfg.Reactions
	case model.AnalysisFCC:
		rowRefs, colRefs = cfg.Reactions, cfg.Reactions
	case model.AnalysisElasticities:
		rowRefs, colRefs = cfg.Reactions, cfg.Metabolites
	default:
		return nil, nil, ErrUnknownAnalysis
	}

	rows, err := resolveAxis(cfg.Rows, rowRefs)
	if err != nil {
		return nil, nil, err
	}
	cols, err := resolveAxis(cfg.Cols, colRefs)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	counter := 0
	for _, row := range rows {
		if row < 0 || row >= len(rowRefs) {
			notes = append(notes, fmt.Sprintf("row index %d is out of range, skipping it", row))
			continue
		}
		for _, col := range cols {
			if col < 0 || col >= len(colRefs) {
				notes = append(notes, fmt.Sprintf("column index %d is out of range, skipping it", col))
				continue
			}
			if cfg.Analysis == model.AnalysisFCC && row == col {
				notes = append(notes, fmt.Sprintf(
					"skipping the flux control coefficient of %s on itself", rowRefs[row]))
				continue
			}

			rowName, colName := rowRefs[row], colRefs[col]
			for _, name := range []string{rowName, colName} {
				if strings.Contains(name, "_") && !seen[name] {
					seen[name] = true
					notes = append(notes, fmt.Sprintf(
						"entity name %q contains an underscore, summaries of the result files will group wrongly", name))
				}
			}

			base := fmt.Sprintf("%s_%s_%s", cfg.ModelBase, rowName, colName)
			if cfg.JobArray {
				base = fmt.Sprintf("%s_%d", base, counter)
			}
			items = append(items, Item{
				Row:     row,
				Col:     col,
				RowName: rowName,
				ColName: colName,
				Base:    base,
			})
			counter++
		}
	}
	return items, notes, nil
}

func resolveAxis(selection, refs []string) ([]int, error) {
	expanded := make([]string, 0, len(selection))
	for _, item := range selection {
		if item == allKeyword {
			for i := range refs {
				expanded = append(expanded, fmt.Sprint(i))
			}
			continue
		}
		expanded = append(expanded, item)
	}
	return model.ResolveIndices(expanded, refs)
}
