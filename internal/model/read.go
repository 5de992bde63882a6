package model

import (
	"fmt"
	"regexp"
	"strings"
)

// NoTitle is the sentinel Title returns when the model declares no name.
const NoTitle = "!No title found!"

// Analysis identifies the MCA sensitivity mode a model is configured for.
// It determines which entity kinds index the rows and columns of the
// optimization target.
type Analysis string

const (
	// AnalysisUnknown means the document carries no recognized type marker.
	AnalysisUnknown Analysis = ""
	// AnalysisCCC is concentration control coefficients: metabolites x reactions.
	AnalysisCCC Analysis = "ccc"
	// AnalysisElasticities is elasticities: reactions x metabolites.
	AnalysisElasticities Analysis = "e"
	// AnalysisFCC is flux control coefficients: reactions x reactions.
	AnalysisFCC Analysis = "fcc"
)

var (
	reCompartment = regexp.MustCompile(`key="(Compartment_[0-9]+)" name="([^"]+)"`)
	reReaction    = regexp.MustCompile(`key="Reaction_[0-9]+" name="([^"]+)"`)
	reMetabolite  = regexp.MustCompile(`key="Metabolite_([0-9]+)" name="([^"]+)" simulationType="reactions" compartment="(Compartment_[0-9]+)"`)
	reStateRef    = regexp.MustCompile(`objectReference="Metabolite_([0-9]+)"`)
	reModelName   = regexp.MustCompile(`name="([^"]+)"`)
	reAnalysis    = regexp.MustCompile(`caled ([^\[]+)\[`)
)

// analysisPhrases maps the type marker phrase found in the document to the
// short analysis code.
var analysisPhrases = map[string]Analysis{
	"concentration control coefficients": AnalysisCCC,
	"elasticities":                       AnalysisElasticities,
	"flux control coefficients":          AnalysisFCC,
}

// Title returns the model name from the first <Model > line. The second
// return is false when no title was found and the sentinel is returned;
// that condition is cosmetic and callers normally just warn.
func (d *Document) Title() (string, bool) {
	for _, line := range strings.Split(d.content, "\n") {
		// The space matters: <ModelParameterSet lines also start with <Model.
		if !strings.Contains(line, "<Model ") {
			continue
		}
		m := reModelName.FindStringSubmatch(line)
		if m == nil {
			return NoTitle, false
		}
		return m[1], true
	}
	return NoTitle, false
}

// Compartments returns all declared compartments keyed by identity
// ("Compartment_N" -> display name). The map is rebuilt on every call.
func (d *Document) Compartments() map[string]string {
	compartments := make(map[string]string)
	for _, line := range strings.Split(d.content, "\n") {
		if !strings.Contains(line, "<Compartment") {
			continue
		}
		if m := reCompartment.FindStringSubmatch(line); m != nil {
			compartments[m[1]] = m[2]
		}
	}
	return compartments
}

// Reactions returns all reaction names in the order the simulator numbers
// them, which is simply declaration order; the index of a name is its
// reaction number. The identity number in the key attribute is irrelevant.
//
// A <Reaction line that does not carry the key/name pair is a malformed
// document and fails, since the whole positional model depends on this
// list being complete.
func (d *Document) Reactions() ([]string, error) {
	var reactions []string
	for _, line := range strings.Split(d.content, "\n") {
		if !strings.Contains(line, "<Reaction") {
			continue
		}
		m := reReaction.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("malformed reaction declaration: %q", strings.TrimSpace(line))
		}
		reactions = append(reactions, m[1])
	}
	return reactions, nil
}

// Metabolites returns the names of all dynamic metabolites in simulator
// order. Only species with simulationType="reactions" participate; fixed
// and boundary species are excluded.
//
// Declaration order is NOT simulator order. The declarations only map
// identity keys to names (pass 1); the <StateTemplateVariable> list then
// fixes the order by referencing those keys (pass 2). References that do
// not resolve, e.g. to fixed species, are skipped silently.
//
// When the model has more than one compartment, names are suffixed with
// "_<compartmentName>" to disambiguate. Uniqueness is not guaranteed by
// the schema; duplicates are preserved as-is.
func (d *Document) Metabolites() []string {
	compartments := d.Compartments()
	appendComp := len(compartments) > 1

	var metabolites []string
	buffer := make(map[string]string)

	for _, line := range strings.Split(d.content, "\n") {
		switch {
		case strings.Contains(line, "<Metabolite"):
			m := reMetabolite.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[2]
			if appendComp {
				name += "_" + compartments[m[3]]
			}
			buffer[m[1]] = name
		case strings.Contains(line, "<StateTemplateVariable"):
			m := reStateRef.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if name, ok := buffer[m[1]]; ok {
				metabolites = append(metabolites, name)
			}
		}
	}
	return metabolites
}

// AnalysisType detects which MCA mode the optimization target references.
// Scaled and unscaled variants map to the same code. Unrecognized or
// absent markers yield AnalysisUnknown; that is a sentinel, not an error,
// and callers decide whether it is acceptable.
func (d *Document) AnalysisType() Analysis {
	m := reAnalysis.FindStringSubmatch(d.content)
	if m == nil {
		return AnalysisUnknown
	}
	if a, ok := analysisPhrases[m[1]]; ok {
		return a
	}
	return AnalysisUnknown
}
