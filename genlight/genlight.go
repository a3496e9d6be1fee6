// Package genlight holds SNP and presence/absence genotype datasets in the
// genlight layout: a matrix of per-individual calls plus one metadata row per
// locus. Filtering and reporting packages operate on this container.
package genlight

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Kind tags the ploidy of a dataset. Biallelic data carries SNP calls
// (0/1/2), PresenceAbsence carries fragment presence calls (0/1).
type Kind int

const (
	Biallelic Kind = iota
	PresenceAbsence
)

func (k Kind) String() string {
	switch k {
	case Biallelic:
		return "SNP"
	case PresenceAbsence:
		return "SilicoDArT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Ploidy returns 2 for SNP data and 1 for presence/absence data.
func (k Kind) Ploidy() int {
	if k == PresenceAbsence {
		return 1
	}
	return 2
}

// MissingCall marks an uncalled genotype in the matrix.
const MissingCall int8 = -1

// ErrInvalidDataset is returned when a value does not hold a recognisable
// genlight dataset: unknown kind, ragged genotype rows, or metadata out of
// step with the locus count.
var ErrInvalidDataset = errors.New("genlight: not a valid SNP or presence/absence dataset")

// MissingMetricError is returned when a requested locus metric is not a
// column of the dataset's locus metadata.
type MissingMetricError struct {
	Metric string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("genlight: locus metadata has no %q column", e.Metric)
}

// Provenance is one record of the dataset's transformation history.
type Provenance struct {
	Op     string
	Params map[string]string
	At     time.Time
}

// Genlight is an individuals x loci genotype matrix with aligned per-locus
// metadata and optional per-individual population labels. Subsetting
// operations return a new Genlight; the receiver is never modified.
type Genlight struct {
	Kind Kind
	Inds []string
	Pops []string // one label per individual, may be empty

	// Geno[i][j] is the call for individual i at locus j.
	Geno [][]int8

	// Loci has exactly one row per locus, in locus order.
	Loci dataframe.DataFrame

	History []Provenance
}

// NInd returns the number of individuals.
func (g *Genlight) NInd() int {
	return len(g.Inds)
}

// NLoc returns the number of loci.
func (g *Genlight) NLoc() int {
	if len(g.Geno) > 0 {
		return len(g.Geno[0])
	}
	return g.Loci.Nrow()
}

// Validate checks the structural invariants of the dataset.
func (g *Genlight) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil dataset", ErrInvalidDataset)
	}
	if g.Kind != Biallelic && g.Kind != PresenceAbsence {
		return fmt.Errorf("%w: ploidy must be 1 or 2, got kind %v", ErrInvalidDataset, g.Kind)
	}
	if len(g.Geno) != len(g.Inds) {
		return fmt.Errorf("%w: %d genotype rows for %d individuals", ErrInvalidDataset, len(g.Geno), len(g.Inds))
	}
	nLoc := g.NLoc()
	for i, row := range g.Geno {
		if len(row) != nLoc {
			return fmt.Errorf("%w: genotype row %d has %d loci, expected %d", ErrInvalidDataset, i, len(row), nLoc)
		}
	}
	if g.Loci.Nrow() != nLoc {
		return fmt.Errorf("%w: %d metadata rows for %d loci", ErrInvalidDataset, g.Loci.Nrow(), nLoc)
	}
	if len(g.Pops) != 0 && len(g.Pops) != len(g.Inds) {
		return fmt.Errorf("%w: %d population labels for %d individuals", ErrInvalidDataset, len(g.Pops), len(g.Inds))
	}
	return nil
}

// HasMetric reports whether name is a column of the locus metadata.
func (g *Genlight) HasMetric(name string) bool {
	return slices.Contains(g.Loci.Names(), name)
}

// Metric returns the named locus metadata column as float64, one value per
// locus in locus order.
func (g *Genlight) Metric(name string) ([]float64, error) {
	if !g.HasMetric(name) {
		return nil, &MissingMetricError{Metric: name}
	}
	return g.Loci.Col(name).Float(), nil
}

// RepeatabilityMetric returns the metadata column holding the repeatability
// score for this dataset kind: RepAvg for SNP data, Reproducibility for
// presence/absence data.
func (g *Genlight) RepeatabilityMetric() string {
	if g.Kind == PresenceAbsence {
		return "Reproducibility"
	}
	return "RepAvg"
}

// Subset returns a new dataset containing only the loci for which keep is
// true, with metadata rows subset in the same pass so the alignment
// invariant holds. Individuals, populations and history are copied.
func (g *Genlight) Subset(keep []bool) (*Genlight, error) {
	if len(keep) != g.NLoc() {
		return nil, fmt.Errorf("genlight: keep mask has %d entries for %d loci", len(keep), g.NLoc())
	}

	idx := make([]int, 0, len(keep))
	for j, k := range keep {
		if k {
			idx = append(idx, j)
		}
	}

	geno := make([][]int8, len(g.Geno))
	for i, row := range g.Geno {
		sub := make([]int8, 0, len(idx))
		for _, j := range idx {
			sub = append(sub, row[j])
		}
		geno[i] = sub
	}

	loci := g.Loci.Subset(idx)
	if loci.Err != nil {
		return nil, fmt.Errorf("genlight: subsetting locus metadata: %w", loci.Err)
	}

	return &Genlight{
		Kind:    g.Kind,
		Inds:    slices.Clone(g.Inds),
		Pops:    slices.Clone(g.Pops),
		Geno:    geno,
		Loci:    loci,
		History: slices.Clone(g.History),
	}, nil
}

// AppendHistory records one transformation on this dataset. The history is
// provenance only, it is never replayed.
func (g *Genlight) AppendHistory(op string, params map[string]string) {
	g.History = append(g.History, Provenance{Op: op, Params: params, At: time.Now()})
}
