package report

import (
	"math"

	"github.com/samber/lo"
)

// SweepRow is one candidate threshold and the retention it would give.
type SweepRow struct {
	Threshold   float64
	Retained    int
	RetainedPct float64
	Filtered    int
	FilteredPct float64
}

// SweepPoints is the fixed number of candidate thresholds in a sweep.
const SweepPoints = 21

// BuildSweep interpolates points thresholds between low (inclusive) and
// high, and counts for each how many loci would be retained by metric >=
// threshold. Rows are ordered by descending threshold, so the last row is
// the observed minimum and always retains every locus.
func BuildSweep(values []float64, low, high float64, points int) []SweepRow {
	total := len(values)
	if total == 0 || points < 1 {
		return nil
	}

	rows := make([]SweepRow, 0, points)
	for i := points - 1; i >= 0; i-- {
		t := low
		if points > 1 {
			t = low + (high-low)*float64(i)/float64(points-1)
		}
		retained := lo.CountBy(values, func(v float64) bool { return v >= t })
		pct := round1(float64(retained) * 100 / float64(total))
		rows = append(rows, SweepRow{
			Threshold:   t,
			Retained:    retained,
			RetainedPct: pct,
			Filtered:    total - retained,
			FilteredPct: round1(100 - pct),
		})
	}
	return rows
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
