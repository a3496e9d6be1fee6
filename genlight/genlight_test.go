package genlight

import (
	"errors"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func smallDataset() *Genlight {
	return &Genlight{
		Kind: Biallelic,
		Inds: []string{"ind1", "ind2"},
		Pops: []string{"north", "south"},
		Geno: [][]int8{
			{0, 1, 2, MissingCall},
			{2, 2, 0, 1},
		},
		Loci: dataframe.New(
			series.New([]string{"L1", "L2", "L3", "L4"}, series.String, "AlleleID"),
			series.New([]float64{5, 10, 60, 3}, series.Float, "rdepth"),
			series.New([]float64{1.0, 0.95, 0.99, 0.90}, series.Float, "RepAvg"),
		),
	}
}

func TestSubsetAlignment(t *testing.T) {
	gl := smallDataset()

	res, err := gl.Subset([]bool{true, false, true, false})
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	if res.NLoc() != 2 {
		t.Fatalf("subset has %d loci, want 2", res.NLoc())
	}
	if res.Loci.Nrow() != res.NLoc() {
		t.Errorf("metadata has %d rows for %d loci", res.Loci.Nrow(), res.NLoc())
	}

	depths, err := res.Metric("rdepth")
	if err != nil {
		t.Fatalf("Metric: %v", err)
	}
	if depths[0] != 5 || depths[1] != 60 {
		t.Errorf("kept depths = %v, want [5 60] in original order", depths)
	}
	if res.Geno[0][0] != 0 || res.Geno[0][1] != 2 {
		t.Errorf("kept calls for ind1 = %v, want [0 2]", res.Geno[0])
	}
	if err := res.Validate(); err != nil {
		t.Errorf("subset result does not validate: %v", err)
	}
}

func TestSubsetDoesNotShareHistory(t *testing.T) {
	gl := smallDataset()
	gl.AppendHistory("load", nil)

	res, err := gl.Subset([]bool{true, true, true, true})
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	res.AppendHistory("filter.rdepth", map[string]string{"lower": "5"})

	if len(gl.History) != 1 {
		t.Errorf("parent history has %d records after child append, want 1", len(gl.History))
	}
	if len(res.History) != 2 {
		t.Errorf("child history has %d records, want 2", len(res.History))
	}
}

func TestSubsetBadMask(t *testing.T) {
	gl := smallDataset()
	if _, err := gl.Subset([]bool{true}); err == nil {
		t.Fatal("Subset with short mask succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	gl := smallDataset()
	if err := gl.Validate(); err != nil {
		t.Fatalf("valid dataset rejected: %v", err)
	}

	bad := smallDataset()
	bad.Kind = Kind(3)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("unknown kind: err = %v, want ErrInvalidDataset", err)
	}

	bad = smallDataset()
	bad.Geno[1] = bad.Geno[1][:2]
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("ragged genotypes: err = %v, want ErrInvalidDataset", err)
	}

	bad = smallDataset()
	bad.Loci = dataframe.New(series.New([]float64{1, 2}, series.Float, "rdepth"))
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("misaligned metadata: err = %v, want ErrInvalidDataset", err)
	}

	bad = smallDataset()
	bad.Pops = []string{"north"}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("short pop labels: err = %v, want ErrInvalidDataset", err)
	}
}

func TestMetricMissing(t *testing.T) {
	gl := smallDataset()

	_, err := gl.Metric("Reproducibility")
	var missing *MissingMetricError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingMetricError", err)
	}
	if missing.Metric != "Reproducibility" {
		t.Errorf("missing metric = %q, want Reproducibility", missing.Metric)
	}
}

func TestRepeatabilityMetricByKind(t *testing.T) {
	gl := smallDataset()
	if got := gl.RepeatabilityMetric(); got != "RepAvg" {
		t.Errorf("SNP repeatability metric = %q, want RepAvg", got)
	}
	gl.Kind = PresenceAbsence
	if got := gl.RepeatabilityMetric(); got != "Reproducibility" {
		t.Errorf("presence/absence repeatability metric = %q, want Reproducibility", got)
	}
}

func TestSimulate(t *testing.T) {
	gl := Simulate(10, 50, Biallelic, 42)

	if gl.NInd() != 10 || gl.NLoc() != 50 {
		t.Fatalf("simulated %d x %d, want 10 x 50", gl.NInd(), gl.NLoc())
	}
	if err := gl.Validate(); err != nil {
		t.Fatalf("simulated dataset does not validate: %v", err)
	}
	for _, metric := range []string{"rdepth", "RepAvg"} {
		values, err := gl.Metric(metric)
		if err != nil {
			t.Fatalf("Metric(%s): %v", metric, err)
		}
		if len(values) != 50 {
			t.Errorf("%s has %d values, want 50", metric, len(values))
		}
	}
	for i, row := range gl.Geno {
		for j, call := range row {
			if call != MissingCall && (call < 0 || call > 2) {
				t.Fatalf("call %d at ind %d locus %d out of range", call, i, j)
			}
		}
	}
}

func TestSimulatePresenceAbsence(t *testing.T) {
	gl := Simulate(4, 20, PresenceAbsence, 7)

	if !gl.HasMetric("Reproducibility") {
		t.Error("presence/absence simulation lacks Reproducibility column")
	}
	for _, row := range gl.Geno {
		for _, call := range row {
			if call != MissingCall && call != 0 && call != 1 {
				t.Fatalf("presence/absence call %d out of range", call)
			}
		}
	}
}
