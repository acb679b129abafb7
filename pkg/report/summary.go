package report

import (
	"fmt"
	"strings"
)

// Summary renders m as a human-readable report, in the teacher's
// section-header plain-text style.
func Summary(m *Metrics) string {
	var b strings.Builder

	b.WriteString("=== Solution Report ===\n\n")
	b.WriteString(fmt.Sprintf("Placed: %d/%d\n", m.PlacedCount, m.TotalCount))
	b.WriteString(fmt.Sprintf("Strip Width: %.3f\n", m.StripWidth))
	b.WriteString(fmt.Sprintf("Height: %.3f\n", m.Height))
	b.WriteString(fmt.Sprintf("Item Area: %.3f\n", m.ItemArea))
	b.WriteString(fmt.Sprintf("Utilization: %.2f%%\n", m.Utilization*100))

	if m.BinEdgeHazards > 0 {
		b.WriteString(fmt.Sprintf("\nWARNING: %d placement(s) cross the strip boundary\n", m.BinEdgeHazards))
	}
	if m.PlacedCount < m.TotalCount {
		b.WriteString(fmt.Sprintf("\nWARNING: %d item(s) remain unplaced\n", m.TotalCount-m.PlacedCount))
	}

	return b.String()
}

// Complete reports whether every demanded item was placed and no
// placement crosses the strip boundary.
func Complete(m *Metrics) bool {
	return m.PlacedCount == m.TotalCount && m.BinEdgeHazards == 0
}
