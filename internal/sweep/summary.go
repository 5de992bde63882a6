package sweep

import (
	"fmt"
	"sort"
	"strings"
)

// objectiveMarker flags the report line carrying the optimized value.
const objectiveMarker = "Objective Function Value:"

// Triple is one objective value with the row and column labels recovered
// from its file name.
type Triple struct {
	Row, Col string
	Value    string
}

// SplitResultName decomposes a result file name of the form
// "<scan>_<row>_<col>.txt" at its last two underscores. The scan id may
// itself contain underscores; row and column labels may not, which is why
// planning warns about such entity names. Names with fewer than two
// underscores do not fit the convention.
func SplitResultName(filename string) (scan, row, col string, ok bool) {
	name := strings.TrimSuffix(filename, ".txt")
	i := strings.LastIndex(name, "_")
	if i <= 0 {
		return "", "", "", false
	}
	col = name[i+1:]
	name = name[:i]
	j := strings.LastIndex(name, "_")
	if j <= 0 {
		return "", "", "", false
	}
	return name[:j], name[j+1:], col, col != "" && name[j+1:] != ""
}

// ParseObjectives returns every objective function value found in one
// result file, in order of appearance. A file of a failed or unfinished
// run yields none.
func ParseObjectives(content string) []string {
	var values []string
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, objectiveMarker) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		values = append(values, strings.TrimSpace(fields[1]))
	}
	return values
}

// Summary groups objective triples by scan id, keeping the order in which
// files were added within each scan.
type Summary struct {
	scans map[string][]Triple
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{scans: make(map[string][]Triple)}
}

// Add records the objective values of one result file under its scan id.
// It reports false when the file name does not follow the
// "<scan>_<row>_<col>.txt" convention; such files are skipped entirely.
func (s *Summary) Add(filename, content string) bool {
	scan, row, col, ok := SplitResultName(filename)
	if !ok {
		return false
	}
	for _, value := range ParseObjectives(content) {
		s.scans[scan] = append(s.scans[scan], Triple{Row: row, Col: col, Value: value})
	}
	return true
}

// Scans returns the scan ids in lexicographic order.
func (s *Summary) Scans() []string {
	ids := make([]string, 0, len(s.scans))
	for id := range s.scans {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Triples returns the triples recorded for one scan, in input order.
func (s *Summary) Triples(scan string) []Triple {
	return s.scans[scan]
}

// Render formats one scan's summary as TSV lines "row<TAB>col<TAB>value".
func (s *Summary) Render(scan string) string {
	lines := make([]string, 0, len(s.scans[scan]))
	for _, t := range s.scans[scan] {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s", t.Row, t.Col, t.Value))
	}
	return strings.Join(lines, "\n")
}

// SummaryFileName is the output name for one scan's summary.
func SummaryFileName(scan string) string {
	return scan + "_summary.txt"
}
