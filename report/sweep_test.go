package report

import (
	"math"
	"testing"
)

func TestBuildSweepRowSums(t *testing.T) {
	values := []float64{0.80, 0.85, 0.90, 0.95, 1.0, 1.0, 0.99, 0.82}
	rows := BuildSweep(values, 0.80, 1.0, SweepPoints)

	if len(rows) != SweepPoints {
		t.Fatalf("sweep has %d rows, want %d", len(rows), SweepPoints)
	}
	for i, row := range rows {
		if row.Retained+row.Filtered != len(values) {
			t.Errorf("row %d: retained %d + filtered %d != %d loci", i, row.Retained, row.Filtered, len(values))
		}
		if math.Abs(row.RetainedPct+row.FilteredPct-100) > 0.05 {
			t.Errorf("row %d: percentages sum to %v, want 100", i, row.RetainedPct+row.FilteredPct)
		}
	}
}

func TestBuildSweepDescending(t *testing.T) {
	values := []float64{0.80, 0.9, 1.0}
	rows := BuildSweep(values, 0.80, 1.0, SweepPoints)

	for i := 1; i < len(rows); i++ {
		if rows[i].Threshold >= rows[i-1].Threshold {
			t.Errorf("row %d threshold %v not below row %d threshold %v",
				i, rows[i].Threshold, i-1, rows[i-1].Threshold)
		}
	}
}

func TestBuildSweepAnchors(t *testing.T) {
	// 100 loci with observed minimum 0.80.
	values := make([]float64, 100)
	for i := range values {
		values[i] = 0.80 + 0.2*float64(i)/99
	}
	rows := BuildSweep(values, 0.80, 1.0, SweepPoints)

	first, last := rows[0], rows[len(rows)-1]
	if first.Threshold != 1.0 {
		t.Errorf("first threshold = %v, want 1.0", first.Threshold)
	}
	if first.RetainedPct > 100 {
		t.Errorf("first retained pct = %v, want <= 100", first.RetainedPct)
	}
	if math.Abs(last.Threshold-0.80) > 1e-12 {
		t.Errorf("last threshold = %v, want 0.80", last.Threshold)
	}
	if last.RetainedPct != 100 {
		t.Errorf("last retained pct = %v, want 100", last.RetainedPct)
	}
	if last.Retained != len(values) {
		t.Errorf("last retained = %d, want %d", last.Retained, len(values))
	}
}

func TestBuildSweepEmpty(t *testing.T) {
	if rows := BuildSweep(nil, 0, 1, SweepPoints); rows != nil {
		t.Errorf("sweep over no values = %v, want nil", rows)
	}
}
