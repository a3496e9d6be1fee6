package genlight

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate builds a random dataset with the metadata columns the filtering
// and reporting tools expect (rdepth, RepAvg or Reproducibility, AlleleID,
// TrimmedSequence). Useful for trying out thresholds and for tests.
func Simulate(nInd, nLoc int, kind Kind, seed uint64) *Genlight {
	src := rand.NewSource(seed)
	rng := rand.New(src)

	depthDist := distuv.Poisson{Lambda: 30, Src: src}

	gl := &Genlight{Kind: kind}
	for i := 0; i < nInd; i++ {
		gl.Inds = append(gl.Inds, fmt.Sprintf("ind%d", i+1))
		if i < nInd/2 {
			gl.Pops = append(gl.Pops, "pop1")
		} else {
			gl.Pops = append(gl.Pops, "pop2")
		}
	}

	alleleIDs := make([]string, nLoc)
	seqs := make([]string, nLoc)
	depths := make([]float64, nLoc)
	repeats := make([]float64, nLoc)
	freqs := make([]float64, nLoc)
	for j := 0; j < nLoc; j++ {
		alleleIDs[j] = fmt.Sprintf("ALL%06d", j+1)
		seqs[j] = randomSequence(rng, 20+rng.Intn(50))
		depths[j] = 1 + depthDist.Rand()
		repeats[j] = 0.9 + 0.1*rng.Float64()
		freqs[j] = 0.05 + 0.9*rng.Float64()
	}

	for i := 0; i < nInd; i++ {
		calls := make([]int8, nLoc)
		for j := 0; j < nLoc; j++ {
			if rng.Float64() < 0.02 {
				calls[j] = MissingCall
				continue
			}
			call := distuv.Binomial{N: float64(kind.Ploidy()), P: freqs[j], Src: src}
			calls[j] = int8(call.Rand())
		}
		gl.Geno = append(gl.Geno, calls)
	}

	gl.Loci = dataframe.New(
		series.New(alleleIDs, series.String, "AlleleID"),
		series.New(seqs, series.String, "TrimmedSequence"),
		series.New(depths, series.Float, "rdepth"),
		series.New(repeats, series.Float, gl.RepeatabilityMetric()),
	)
	return gl
}

func randomSequence(rng *rand.Rand, length int) string {
	const bases = "ACGT"
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = bases[rng.Intn(len(bases))]
	}
	return string(seq)
}
