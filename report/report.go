// Package report summarises locus quality metrics of a genlight dataset
// and builds threshold sweep tables to help choose a filtering cutoff.
// Reporting is read-only: the dataset is never modified and no history is
// recorded.
package report

import (
	"errors"
	"sort"

	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoLoci is returned when asked to report on a dataset with no loci.
var ErrNoLoci = errors.New("report: dataset has no loci")

// Options selects the optional plot side effects of a report. The returned
// sweep table never depends on them.
type Options struct {
	Histogram bool
	Boxplot   bool
	OutDir    string
	Verbose   int
}

// Stats is the summary of a metric across all loci.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Describe computes min, max and mean of a metric.
func Describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	return Stats{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Mean: stat.Mean(values, nil),
	}
}

// popCounts tallies individuals per population. Datasets without labels get
// a single synthetic population so per-population counts always exist.
func popCounts(gl *genlight.Genlight) map[string]int {
	pops := gl.Pops
	if len(pops) == 0 {
		pops = make([]string, gl.NInd())
		for i := range pops {
			pops[i] = "pop1"
		}
	}
	return lo.CountValues(pops)
}

// summarise logs the headline numbers for a metric report.
func summarise(log *utils.Logger, gl *genlight.Genlight, metric string, s Stats) {
	log.Progressf("Number of individuals: %d\nNumber of loci: %d\n", gl.NInd(), gl.NLoc())
	for pop, n := range popCounts(gl) {
		log.Progressf("  %s: %d individuals\n", pop, n)
	}
	log.Summaryf("\n%s: min %.4f, max %.4f, mean %.4f\n\n", metric, s.Min, s.Max, s.Mean)
}

// quartiles returns min, Q1, median, Q3 and max for a boxplot.
func quartiles(values []float64) [5]float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return [5]float64{
		sorted[0],
		stat.Quantile(0.25, stat.Empirical, sorted, nil),
		stat.Quantile(0.5, stat.Empirical, sorted, nil),
		stat.Quantile(0.75, stat.Empirical, sorted, nil),
		sorted[len(sorted)-1],
	}
}
