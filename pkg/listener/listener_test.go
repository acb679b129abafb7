package listener

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/gonest/pkg/spp"
)

func sampleSolution() *spp.Solution {
	return &spp.Solution{
		Height: 12.5,
		Placements: []spp.PlacedItem{
			{ItemID: "A", CopyIndex: 0, X: 1, Y: 2, Rotation: 0},
		},
	}
}

func sampleInstance() *spp.Instance {
	return &spp.Instance{StripWidth: 10, Items: []*spp.Item{{ID: "A", Demand: 2}}}
}

func TestConsole_ReportWritesLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Report(ReportImproving, "exploration", sampleSolution(), sampleInstance())

	out := buf.String()
	if !strings.Contains(out, "exploration") || !strings.Contains(out, "Improving") {
		t.Fatalf("unexpected console output: %q", out)
	}
	if !strings.Contains(out, "placed=1/2") {
		t.Fatalf("expected placed=1/2 in output, got %q", out)
	}
}

func TestConsole_FinalLabel(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Report(ReportFinal, "compression", sampleSolution(), sampleInstance())

	if !strings.Contains(buf.String(), "Final") {
		t.Fatalf("expected 'Final' label, got %q", buf.String())
	}
}

func TestJSONLines_ReportEncodesValidJSON(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONLines(&buf)
	j.Report(ReportImproving, "exploration", sampleSolution(), sampleInstance())

	var decoded jsonReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if decoded.Kind != "improving" {
		t.Errorf("Kind = %q, want improving", decoded.Kind)
	}
	if decoded.Phase != "exploration" {
		t.Errorf("Phase = %q, want exploration", decoded.Phase)
	}
	if decoded.Placed != 1 || decoded.Total != 2 {
		t.Errorf("Placed/Total = %d/%d, want 1/2", decoded.Placed, decoded.Total)
	}
}

func TestMulti_FansOutToAllListeners(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewConsole(&a), NewConsole(&b)}
	m.Report(ReportFinal, "compression", sampleSolution(), sampleInstance())

	if a.String() == "" || b.String() == "" {
		t.Fatal("expected both listeners to receive the report")
	}
}
