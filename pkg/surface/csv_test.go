package surface_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/levquant/levquant/pkg/analysis"
	"github.com/levquant/levquant/pkg/surface"
)

func TestCSVRenderer_RowShape(t *testing.T) {
	a := sampleAnalysis(t, "judicial_comment_on_record")

	var buf bytes.Buffer
	if err := (&surface.CSVRenderer{}).Render(&buf, a); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header, row := records[0], records[1]
	if len(header) != len(row) {
		t.Fatalf("header has %d columns, row has %d", len(header), len(row))
	}

	byName := make(map[string]string, len(header))
	for i, name := range header {
		byName[name] = row[i]
	}

	checks := map[string]string{
		"case_name":            "Meridian v Blackwood",
		"reference":            "CL-2026-000317",
		"leverage_score":       "0.641",
		"cost_pressure":        "6.41",
		"decision":             "HOLD",
		"confidence":           "Moderate",
		"escalation_triggered": "false",
		"band":                 "VALIDATION",
		"band_range":           "£5.0m–£9.0m",
		"active_flags":         "judicial_comment_on_record",
	}
	for col, want := range checks {
		if got, ok := byName[col]; !ok {
			t.Errorf("missing column %q", col)
		} else if got != want {
			t.Errorf("column %q = %q, want %q", col, got, want)
		}
	}
}

func TestCSVRenderer_MultipleRows(t *testing.T) {
	analyses := []*analysis.Analysis{
		sampleAnalysis(t),
		sampleAnalysis(t, "adverse_judicial_language", "sra_formal_action"),
	}

	var buf bytes.Buffer
	if err := (&surface.CSVRenderer{}).RenderAll(&buf, analyses); err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
}

func TestJSONRenderer_Shape(t *testing.T) {
	a := sampleAnalysis(t, "judicial_comment_on_record")

	var buf bytes.Buffer
	if err := (&surface.JSONRenderer{}).Render(&buf, a); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"case_name", "run_at", "snapshot", "band"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(decoded["snapshot"], &snapshot); err != nil {
		t.Fatalf("snapshot is not an object: %v", err)
	}
	for _, key := range []string{"inputs", "scores", "evaluation", "interpretation"} {
		if _, ok := snapshot[key]; !ok {
			t.Errorf("snapshot missing group %q", key)
		}
	}
}
