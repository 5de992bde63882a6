package sweep

import (
	"errors"
	"strings"
	"testing"

	"copasweep/internal/model"
)

var (
	testReactions   = []string{"HK", "PGI", "PFK"}
	testMetabolites = []string{"Glc", "G6P"}
)

func planConfig(analysis model.Analysis, rows, cols []string) Config {
	return Config{
		ModelBase:   "glyco",
		Analysis:    analysis,
		Reactions:   testReactions,
		Metabolites: testMetabolites,
		Rows:        rows,
		Cols:        cols,
	}
}

func TestPlanConcentrationControl(t *testing.T) {
	items, notes, err := Plan(planConfig(model.AnalysisCCC, []string{"Glc"}, []string{"HK", "2"}))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("notes = %v, want none", notes)
	}

	want := []Item{
		{Row: 0, Col: 0, RowName: "Glc", ColName: "HK", Base: "glyco_Glc_HK"},
		{Row: 0, Col: 2, RowName: "Glc", ColName: "PFK", Base: "glyco_Glc_PFK"},
	}
	if len(items) != len(want) {
		t.Fatalf("items = %+v, want %+v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestPlanAllKeyword(t *testing.T) {
	items, _, err := Plan(planConfig(model.AnalysisElasticities, []string{"all"}, []string{"all"}))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	// elasticities: reactions x metabolites
	if len(items) != len(testReactions)*len(testMetabolites) {
		t.Errorf("len(items) = %d, want %d", len(items), len(testReactions)*len(testMetabolites))
	}
	if items[0].Base != "glyco_HK_Glc" {
		t.Errorf("items[0].Base = %q, want glyco_HK_Glc", items[0].Base)
	}
}

func TestPlanFluxControlSkipsDiagonal(t *testing.T) {
	items, notes, err := Plan(planConfig(model.AnalysisFCC, []string{"all"}, []string{"all"}))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// 3x3 minus the diagonal.
	if len(items) != 6 {
		t.Errorf("len(items) = %d, want 6", len(items))
	}
	for _, it := range items {
		if it.Row == it.Col {
			t.Errorf("diagonal cell %+v not skipped", it)
		}
	}
	if len(notes) != 3 {
		t.Errorf("notes = %v, want one per diagonal cell", notes)
	}
}

func TestPlanOutOfRangeSkipped(t *testing.T) {
	items, notes, err := Plan(planConfig(model.AnalysisCCC, []string{"9"}, []string{"HK"}))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %+v, want none", items)
	}
	if len(notes) != 1 || !strings.Contains(notes[0], "out of range") {
		t.Errorf("notes = %v, want out-of-range note", notes)
	}
}

func TestPlanUnknownAnalysisFatal(t *testing.T) {
	_, _, err := Plan(planConfig(model.AnalysisUnknown, []string{"all"}, []string{"all"}))
	if !errors.Is(err, ErrUnknownAnalysis) {
		t.Fatalf("err = %v, want ErrUnknownAnalysis", err)
	}
}

func TestPlanUnknownEntityFatal(t *testing.T) {
	_, _, err := Plan(planConfig(model.AnalysisCCC, []string{"NoSuch"}, []string{"HK"}))
	var nf *model.EntityNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want EntityNotFoundError", err)
	}
}

func TestPlanUnderscoreNameWarnsOnce(t *testing.T) {
	cfg := planConfig(model.AnalysisCCC, []string{"Glc"}, []string{"all"})
	cfg.Reactions = []string{"HK_iso1", "PGI"}

	items, notes, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	var underscoreNotes int
	for _, n := range notes {
		if strings.Contains(n, "underscore") {
			underscoreNotes++
		}
	}
	if underscoreNotes != 1 {
		t.Errorf("underscore notes = %d, want exactly 1", underscoreNotes)
	}
}

func TestPlanJobArrayCounter(t *testing.T) {
	cfg := planConfig(model.AnalysisCCC, []string{"all"}, []string{"HK"})
	cfg.JobArray = true

	items, _, err := Plan(cfg)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := []string{"glyco_Glc_HK_0", "glyco_G6P_HK_1"}
	if len(items) != len(want) {
		t.Fatalf("items = %+v", items)
	}
	for i := range want {
		if items[i].Base != want[i] {
			t.Errorf("items[%d].Base = %q, want %q", i, items[i].Base, want[i])
		}
	}
}
