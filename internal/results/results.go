// Package results reconstructs tabular data from CopasiSE steady-state
// report files. Each report contributes at most one species-concentration
// block and one reaction-flux block; many reports are pivoted into wide
// tables with one column per source file.
package results

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// steadyStateMarker is the first line of every report this package reads.
// Files that do not start with it contribute nothing; that is not an
// error, reports of failed runs simply stay empty.
const steadyStateMarker = "A steady state with given resolution was found."

const (
	concHeader = "Species\tConcentration"
	fluxHeader = "Reaction\tFlux"
)

// naSentinel fills cells for which a source file reported no value.
const naSentinel = "na"

var (
	reConcUnit = regexp.MustCompile(`Species\tConcentration \(([^)]+)\)`)
	reFluxUnit = regexp.MustCompile(`Reaction\tFlux \(([^)]+)\)`)
)

// FileValues holds the scalar values one report file contributed. Values
// stay strings; the aggregator never interprets them numerically.
type FileValues struct {
	Concentrations map[string]string
	Fluxes         map[string]string
}

// ParseFile extracts concentration and flux values from one report's
// content. A file without the steady-state marker yields empty maps.
//
// The scan is a two-state machine: the concentration header starts
// collecting tab-separated pairs until a blank line, the flux header does
// the same until a blank line or end of input. The fixed format cannot
// nest or interleave the blocks.
func ParseFile(content string) FileValues {
	v := FileValues{
		Concentrations: make(map[string]string),
		Fluxes:         make(map[string]string),
	}

	if !strings.HasPrefix(content, steadyStateMarker) {
		return v
	}

	active := ""
scan:
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch active {
		case "conc":
			if line == "" {
				active = ""
				continue
			}
			if name, value, ok := splitPair(line); ok {
				v.Concentrations[name] = value
			}
		case "flux":
			if line == "" {
				break scan
			}
			if name, value, ok := splitPair(line); ok {
				v.Fluxes[name] = value
			}
		default:
			if strings.HasPrefix(line, concHeader) {
				active = "conc"
			} else if strings.HasPrefix(line, fluxHeader) {
				active = "flux"
			}
		}
	}
	return v
}

// splitPair takes the entity name and the value column from a report
// line. Report lines carry trailing columns (particle numbers, rates)
// that the tables never use.
func splitPair(line string) (name, value string, ok bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], strings.TrimSpace(fields[1]), true
}

// Units extracts the concentration and flux units from the block headers,
// e.g. "Concentration (mmol/ml)". Headers without a unit fall back to the
// bare quantity name.
func Units(content string) (concUnit, fluxUnit string) {
	concUnit = "Concentration"
	if m := reConcUnit.FindStringSubmatch(content); m != nil {
		concUnit = "Concentration (" + m[1] + ")"
	}
	fluxUnit = "Flux"
	if m := reFluxUnit.FindStringSubmatch(content); m != nil {
		fluxUnit = "Flux (" + m[1] + ")"
	}
	return concUnit, fluxUnit
}

// SourceName derives the table column name for a report file path: base
// name with the extension stripped, so "path/to/run_1.txt" becomes
// "run_1".
func SourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Aggregate pivots the values of many report files into wide tables.
// Columns appear in the order sources were added, including sources that
// contributed no values (their cells all render as "na"). Rows are the
// union of entity names across all sources, sorted lexicographically.
type Aggregate struct {
	sources []string
	conc    map[string]map[string]string
	flux    map[string]map[string]string
}

// NewAggregate returns an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		conc: make(map[string]map[string]string),
		flux: make(map[string]map[string]string),
	}
}

// Add registers one source column and merges its values. Order of calls
// fixes column order.
func (a *Aggregate) Add(source string, v FileValues) {
	a.sources = append(a.sources, source)
	for name, value := range v.Concentrations {
		if a.conc[name] == nil {
			a.conc[name] = make(map[string]string)
		}
		a.conc[name][source] = value
	}
	for name, value := range v.Fluxes {
		if a.flux[name] == nil {
			a.flux[name] = make(map[string]string)
		}
		a.flux[name][source] = value
	}
}

// Sources returns the column names in order.
func (a *Aggregate) Sources() []string { return a.sources }

// ConcentrationTable renders the species-concentration pivot as TSV.
func (a *Aggregate) ConcentrationTable() string { return a.render(a.conc) }

// FluxTable renders the reaction-flux pivot as TSV.
func (a *Aggregate) FluxTable() string { return a.render(a.flux) }

func (a *Aggregate) render(values map[string]map[string]string) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, "\t"+strings.Join(a.sources, "\t"))
	for _, name := range names {
		row := make([]string, 0, len(a.sources)+1)
		row = append(row, name)
		for _, source := range a.sources {
			if v, ok := values[name][source]; ok {
				row = append(row, v)
			} else {
				row = append(row, naSentinel)
			}
		}
		lines = append(lines, strings.Join(row, "\t"))
	}
	return strings.Join(lines, "\n")
}
