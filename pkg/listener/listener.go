package listener

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dshills/gonest/pkg/spp"
)

// ReportKind discriminates why a listener was invoked.
type ReportKind uint8

const (
	// ReportImproving marks an intermediate solution strictly better than
	// the one previously reported during the same phase.
	ReportImproving ReportKind = iota
	// ReportFinal marks the solution handed off at phase or run end.
	ReportFinal
)

// String renders a ReportKind for logging.
func (k ReportKind) String() string {
	if k == ReportFinal {
		return "final"
	}
	return "improving"
}

// SolutionListener receives progress reports from the optimisation
// driver. Implementations must not block the caller for long: the driver
// calls Report synchronously from its search loop.
type SolutionListener interface {
	Report(kind ReportKind, phase string, sol *spp.Solution, inst *spp.Instance)
}

// Console is a SolutionListener that prints human-readable progress lines
// to an io.Writer, in the teacher's plain fmt.Printf style.
type Console struct {
	w     io.Writer
	start time.Time
}

// NewConsole creates a Console listener writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, start: time.Now()}
}

// Report implements SolutionListener.
func (c *Console) Report(kind ReportKind, phase string, sol *spp.Solution, inst *spp.Instance) {
	elapsed := time.Since(c.start).Round(time.Millisecond)
	placed := 0
	if sol != nil {
		placed = len(sol.Placements)
	}
	total := 0
	if inst != nil {
		total = inst.TotalItemCount()
	}

	label := "Improving"
	if kind == ReportFinal {
		label = "Final"
	}

	height := 0.0
	if sol != nil {
		height = sol.Height
	}
	fmt.Fprintf(c.w, "[%s] %s solution: height=%.3f placed=%d/%d elapsed=%v\n",
		phase, label, height, placed, total, elapsed)
}

// jsonReport is one JSON-lines record emitted by JSONLines.
type jsonReport struct {
	Kind    string        `json:"kind"`
	Phase   string        `json:"phase"`
	Elapsed int64         `json:"elapsedMs"`
	Solution *spp.Solution `json:"solution,omitempty"`
	Placed  int           `json:"placed"`
	Total   int           `json:"total"`
}

// JSONLines is a SolutionListener that writes one JSON object per line to
// an io.Writer, for piping progress into external tooling.
type JSONLines struct {
	w     io.Writer
	enc   *json.Encoder
	start time.Time
}

// NewJSONLines creates a JSONLines listener writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{w: w, enc: json.NewEncoder(w), start: time.Now()}
}

// Report implements SolutionListener. Encoding errors are not
// recoverable mid-search, so they are silently dropped rather than
// panicking the driver; a broken sink should not abort optimisation.
func (j *JSONLines) Report(kind ReportKind, phase string, sol *spp.Solution, inst *spp.Instance) {
	placed, total := 0, 0
	if sol != nil {
		placed = len(sol.Placements)
	}
	if inst != nil {
		total = inst.TotalItemCount()
	}
	rep := jsonReport{
		Kind:     kind.String(),
		Phase:    phase,
		Elapsed:  time.Since(j.start).Milliseconds(),
		Solution: sol,
		Placed:   placed,
		Total:    total,
	}
	_ = j.enc.Encode(rep)
}

// Multi fans a single report out to several listeners, in order.
type Multi []SolutionListener

// Report implements SolutionListener.
func (m Multi) Report(kind ReportKind, phase string, sol *spp.Solution, inst *spp.Instance) {
	for _, l := range m {
		l.Report(kind, phase, sol, inst)
	}
}
