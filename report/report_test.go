package report

import (
	"errors"
	"math"
	"testing"

	"github.com/Konoutan/dartR/genlight"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func metricDataset(depths, reps []float64) *genlight.Genlight {
	gl := &genlight.Genlight{
		Kind: genlight.Biallelic,
		Inds: []string{"ind1", "ind2"},
		Geno: make([][]int8, 2),
	}
	for i := range gl.Geno {
		gl.Geno[i] = make([]int8, len(depths))
	}
	gl.Loci = dataframe.New(
		series.New(depths, series.Float, "rdepth"),
		series.New(reps, series.Float, "RepAvg"),
	)
	return gl
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 6})
	if s.Min != 2 || s.Max != 6 || s.Mean != 4 {
		t.Errorf("Describe = %+v, want min 2 max 6 mean 4", s)
	}
}

func TestReadDepthSweepsObservedRange(t *testing.T) {
	gl := metricDataset([]float64{10, 20, 30, 40}, []float64{1, 1, 1, 1})

	rows, err := ReadDepth(gl, Options{})
	if err != nil {
		t.Fatalf("ReadDepth: %v", err)
	}
	if len(rows) != SweepPoints {
		t.Fatalf("sweep has %d rows, want %d", len(rows), SweepPoints)
	}
	if rows[0].Threshold != 40 {
		t.Errorf("first threshold = %v, want observed max 40", rows[0].Threshold)
	}
	if rows[len(rows)-1].Threshold != 10 {
		t.Errorf("last threshold = %v, want observed min 10", rows[len(rows)-1].Threshold)
	}
}

func TestRepeatabilityAnchorsOnOne(t *testing.T) {
	gl := metricDataset([]float64{10, 20, 30}, []float64{0.90, 0.95, 1.0})

	rows, err := Repeatability(gl, Options{})
	if err != nil {
		t.Fatalf("Repeatability: %v", err)
	}
	if rows[0].Threshold != 1.0 {
		t.Errorf("first threshold = %v, want 1.0", rows[0].Threshold)
	}
	if math.Abs(rows[len(rows)-1].Threshold-0.90) > 1e-12 {
		t.Errorf("last threshold = %v, want observed min 0.90", rows[len(rows)-1].Threshold)
	}
}

func TestReportIsReadOnly(t *testing.T) {
	gl := metricDataset([]float64{10, 20, 30}, []float64{1, 1, 1})

	if _, err := ReadDepth(gl, Options{}); err != nil {
		t.Fatalf("ReadDepth: %v", err)
	}
	if len(gl.History) != 0 {
		t.Errorf("report appended %d history records, want 0", len(gl.History))
	}
	if gl.NLoc() != 3 {
		t.Errorf("report changed locus count to %d", gl.NLoc())
	}
}

func TestPopCountsSyntheticPopulation(t *testing.T) {
	gl := metricDataset([]float64{10}, []float64{1})

	counts := popCounts(gl)
	if counts["pop1"] != gl.NInd() {
		t.Errorf("popCounts = %v, want all %d individuals in pop1", counts, gl.NInd())
	}

	gl.Pops = []string{"north", "south"}
	counts = popCounts(gl)
	if counts["north"] != 1 || counts["south"] != 1 {
		t.Errorf("popCounts = %v, want north:1 south:1", counts)
	}
}

func TestRenderFailureDoesNotAffectTable(t *testing.T) {
	gl := metricDataset([]float64{10, 20, 30}, []float64{1, 1, 1})

	rows, err := ReadDepth(gl, Options{
		Histogram: true,
		Boxplot:   true,
		OutDir:    "/nonexistent/dir/for/charts",
	})
	if err != nil {
		t.Fatalf("ReadDepth with failing render: %v", err)
	}
	if len(rows) != SweepPoints {
		t.Errorf("sweep has %d rows despite render failure, want %d", len(rows), SweepPoints)
	}
}

func TestReportMissingMetric(t *testing.T) {
	gl := metricDataset([]float64{10}, []float64{1})
	gl.Loci = dataframe.New(series.New([]float64{1}, series.Float, "RepAvg"))

	_, err := ReadDepth(gl, Options{})
	var missing *genlight.MissingMetricError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingMetricError", err)
	}
}

func TestQuartiles(t *testing.T) {
	q := quartiles([]float64{1, 2, 3, 4, 5})
	if q[0] != 1 || q[4] != 5 {
		t.Errorf("quartiles = %v, want whiskers 1 and 5", q)
	}
	if q[2] != 3 {
		t.Errorf("median = %v, want 3", q[2])
	}
}
