package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"copasweep/internal/sanitize"
)

// matchPolicy states what a mutation does when its pattern matches more
// than once. Zero matches always fail with TargetNotFoundError.
type matchPolicy int

const (
	// ambiguousFatal fails with AmbiguousMatchError and leaves the
	// document untouched. Used where a multiple match means the remaining
	// document state would be unpredictable.
	ambiguousFatal matchPolicy = iota
	// ambiguousApplyAll substitutes every match. The returned count lets
	// callers warn when it exceeds one.
	ambiguousApplyAll
)

var (
	reTargetIndices = regexp.MustCompile(`\[\d*\]\[\d*\]`)
	reTargetType    = regexp.MustCompile(`Array=[^\[]+\[(\d+)\]\[(\d+)\]`)
	reSubtask       = regexp.MustCompile(`<Parameter name="Subtask" type="cn" value="CN=Root,Vector=TaskList\[[^\]]+\]"/>`)
	reMaximize      = regexp.MustCompile(`<Parameter name="Maximize" type="bool" value="\d"/>`)
	reReportTarget  = regexp.MustCompile(`target="[^"]+"`)
	reMethodBlock   = regexp.MustCompile(`<Task ([^n]+) name="Optimization"([\S\s]+?)<Method [\S\s]+?</Method>`)
)

// targetTypes maps the short optimization target type codes to the full
// phrases used inside the Array= reference. The "u" prefix selects the
// unscaled variant.
var targetTypes = map[string]string{
	"CCC":  "Scaled concentration control coefficients",
	"FCC":  "Scaled flux control coefficients",
	"E":    "Scaled elasticities",
	"uCCC": "Unscaled concentration control coefficients",
	"uFCC": "Unscaled flux control coefficients",
	"uE":   "Unscaled elasticities",
}

// methodBlocks holds the canned <Method> replacements for the supported
// optimization methods, with the standard parameter sets.
var methodBlocks = map[string]string{
	"EP": `<Method name="Evolutionary Programming" type="EvolutionaryProgram">
        <Parameter name="Number of Generations" type="unsignedInteger" value="200"/>
        <Parameter name="Population Size" type="unsignedInteger" value="40"/>
        <Parameter name="Random Number Generator" type="unsignedInteger" value="1"/>
        <Parameter name="Seed" type="unsignedInteger" value="0"/>
      </Method>`,
	"PS": `<Method name="Particle Swarm" type="ParticleSwarm">
        <Parameter name="Iteration Limit" type="unsignedInteger" value="2000"/>
        <Parameter name="Swarm Size" type="unsignedInteger" value="50"/>
        <Parameter name="Std. Deviation" type="unsignedFloat" value="1e-06"/>
        <Parameter name="Random Number Generator" type="unsignedInteger" value="1"/>
        <Parameter name="Seed" type="unsignedInteger" value="0"/>
      </Method>`,
}

// rewrite is the single substitution primitive every mutator goes through.
// It counts the matches first and only substitutes when the policy allows,
// so a failing mutation leaves the document byte-identical. The count of
// substituted regions is returned for callers that warn on multiples.
func (d *Document) rewrite(op string, re *regexp.Regexp, repl string, policy matchPolicy) (int, error) {
	n := len(re.FindAllStringIndex(d.content, -1))
	if n == 0 {
		return 0, &TargetNotFoundError{Op: op}
	}
	if n > 1 && policy == ambiguousFatal {
		return n, &AmbiguousMatchError{Op: op, Matches: n}
	}
	d.content = re.ReplaceAllString(d.content, repl)
	return n, nil
}

// literal escapes s for use inside a ReplaceAllString template, so user
// values can never be misread as capture group references.
func literal(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// SetTargetIndices points the optimization objective at the [row][col]
// coordinate pair. The count is returned so callers can warn when more
// than one coordinate pair was rewritten.
//
// Zero matches means the document is not configured for MCA optimization.
func (d *Document) SetTargetIndices(row, col int) (int, error) {
	repl := "[" + strconv.Itoa(row) + "][" + strconv.Itoa(col) + "]"
	return d.rewrite("set optimization target", reTargetIndices, repl, ambiguousApplyAll)
}

// SetTargetType switches the optimization target between the scaled and
// unscaled control coefficient and elasticity arrays. kind is one of CCC,
// FCC, E, uCCC, uFCC, uE. The existing coordinate indices are preserved.
func (d *Document) SetTargetType(kind string) (int, error) {
	phrase, ok := targetTypes[kind]
	if !ok {
		return 0, fmt.Errorf("the optimization target type %q is no valid target type", kind)
	}
	repl := "Array=" + literal(phrase) + "[${1}][${2}]"
	return d.rewrite("set optimization target type", reTargetType, repl, ambiguousApplyAll)
}

// SetSubtaskMCA points the optimization subtask at Metabolic Control
// Analysis.
func (d *Document) SetSubtaskMCA() (int, error) {
	repl := `<Parameter name="Subtask" type="cn" value="CN=Root,Vector=TaskList[Metabolic Control Analysis]"/>`
	return d.rewrite("set subtask to MCA", reSubtask, repl, ambiguousApplyAll)
}

// SetMaximize sets whether the optimization maximizes (true) or minimizes
// (false) its objective.
func (d *Document) SetMaximize(maximize bool) (int, error) {
	v := "0"
	if maximize {
		v = "1"
	}
	repl := `<Parameter name="Maximize" type="bool" value="` + v + `"/>`
	return d.rewrite("set maximize flag", reMaximize, repl, ambiguousApplyAll)
}

// SetMethod replaces the whole <Method> block of the Optimization task
// with the canned parameter set for method ("EP" or "PS"). An unknown
// method fails before the document is inspected at all, and an ambiguous
// match fails hard: two optimization tasks cannot be told apart.
func (d *Document) SetMethod(method string) error {
	block, ok := methodBlocks[method]
	if !ok {
		return fmt.Errorf("optimization method %q not implemented", method)
	}
	repl := `<Task ${1} name="Optimization"${2}` + literal(block)
	_, err := d.rewrite("set optimization method", reMethodBlock, repl, ambiguousFatal)
	return err
}

// SetReportFile rewrites every report target attribute to name, sanitized
// to the filename character set. The sanitized name and the number of
// rewritten attributes are returned; models with several report
// definitions legitimately match more than once, so multiples are left to
// the caller to warn about.
func (d *Document) SetReportFile(name string) (string, int, error) {
	name = sanitize.Filename(name)
	repl := `target="` + literal(name) + `"`
	n, err := d.rewrite("set report filename", reReportTarget, repl, ambiguousApplyAll)
	return name, n, err
}

// SetItemBounds rewrites the lower bound, start value, and upper bound of
// one optimization item. The item is addressed by the name inside its
// ObjectCN vector reference; kinetic parameter items additionally need the
// parameter name, global value items pass parameter as "".
func (d *Document) SetItemBounds(name, lower, start, upper, parameter string) (int, error) {
	qn := regexp.QuoteMeta(name)

	var re *regexp.Regexp
	var repl string
	if parameter == "" {
		re = regexp.MustCompile(
			`<Parameter name="LowerBound" type="cn" value="[^"]+"/>\s+` +
				`<Parameter name="ObjectCN" type="cn" value="(.+)\[` + qn + `\](.+)"/>\s+` +
				`<Parameter name="StartValue" type="float" value="[^"]+"/>\s+` +
				`<Parameter name="UpperBound" type="cn" value="[^"]+"/>`)
		repl = `<Parameter name="LowerBound" type="cn" value="` + literal(lower) + `"/>` +
			"\n            " + `<Parameter name="ObjectCN" type="cn" value="${1}[` + literal(name) + `]${2}"/>` +
			"\n            " + `<Parameter name="StartValue" type="float" value="` + literal(start) + `"/>` +
			"\n            " + `<Parameter name="UpperBound" type="cn" value="` + literal(upper) + `"/>`
	} else {
		qp := regexp.QuoteMeta(parameter)
		re = regexp.MustCompile(
			`<Parameter name="LowerBound" type="cn" value="[^"]+"/>\s+` +
				`<Parameter name="ObjectCN" type="cn" value="([^\[]+)\[` + qn + `\]([^"]+)Parameter=` + qp + `([^"]+)"/>\s+` +
				`<Parameter name="StartValue" type="float" value="[^"]+"/>\s+` +
				`<Parameter name="UpperBound" type="cn" value="[^"]+"/>`)
		repl = `<Parameter name="LowerBound" type="cn" value="` + literal(lower) + `"/>` +
			"\n            " + `<Parameter name="ObjectCN" type="cn" value="${1}[` + literal(name) + `]${2}Parameter=` + literal(parameter) + `${3}"/>` +
			"\n            " + `<Parameter name="StartValue" type="float" value="` + literal(start) + `"/>` +
			"\n            " + `<Parameter name="UpperBound" type="cn" value="` + literal(upper) + `"/>`
	}

	return d.rewrite(fmt.Sprintf("change item %q", name), re, repl, ambiguousApplyAll)
}

// DeleteItem removes the whole OptimizationItem parameter group addressed
// by name (and parameter, for kinetic parameter items; pass "" for value
// items). Both zero and multiple matches fail: deleting an ambiguous item
// would leave the optimization setup unpredictable.
func (d *Document) DeleteItem(name, parameter string) error {
	qn := regexp.QuoteMeta(name)

	var pattern string
	if parameter == "" {
		pattern = `\s+<ParameterGroup name="OptimizationItem">\s+<[^>]+>\s+` +
			`<Parameter name="ObjectCN" type="cn" value="[^\[]+\[` + qn + `\][^"]+"/>\s+` +
			`<[^>]+>\s+<[^>]+>\s+</ParameterGroup>`
	} else {
		qp := regexp.QuoteMeta(parameter)
		pattern = `\s+<ParameterGroup name="OptimizationItem">\s+<[^>]+>\s+` +
			`<Parameter name="ObjectCN" type="cn" value="[^\[]+\[` + qn + `\][^"]+Parameter=` + qp + `[^"]+"/>\s+` +
			`<[^>]+>\s+<[^>]+>\s+</ParameterGroup>`
	}

	label := name
	if parameter != "" {
		label += ":" + parameter
	}
	_, err := d.rewrite(fmt.Sprintf("delete item %q", label), regexp.MustCompile(pattern), "", ambiguousFatal)
	return err
}

// SetParameter changes the kinetic parameter of a reaction to value. A
// missing parameter surfaces as TargetNotFoundError but is conventionally
// treated as a warning by callers, matching the forgiving behavior of
// parameter scans; multiples are all replaced.
func (d *Document) SetParameter(reaction, parameter, value string) (int, error) {
	qr := regexp.QuoteMeta(reaction)
	qp := regexp.QuoteMeta(parameter)

	re := regexp.MustCompile(`Reactions\[` + qr + `\],ParameterGroup=([^,]+),Parameter=` + qp + `" value="[^"]+"`)
	repl := `Reactions[` + literal(reaction) + `],ParameterGroup=${1},Parameter=` + literal(parameter) + `" value="` + literal(value) + `"`

	return d.rewrite(fmt.Sprintf("set parameter %s of reaction %s", parameter, reaction), re, repl, ambiguousApplyAll)
}
