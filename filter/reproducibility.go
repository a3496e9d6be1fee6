package filter

import (
	"strconv"

	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
)

// DefaultRepeatability is substituted for thresholds outside [0, 1].
const DefaultRepeatability = 0.99

// Repeatability returns a new dataset keeping only loci whose repeatability
// score is at least threshold. The score column is RepAvg for SNP data and
// Reproducibility for presence/absence data, resolved from the dataset kind.
func Repeatability(gl *genlight.Genlight, threshold float64, verbose int) (*genlight.Genlight, error) {
	v := utils.CheckVerbosity(verbose)
	log := utils.NewLogger(v, nil)
	log.Startf("Starting filter.Repeatability ...\n\n")

	if threshold < 0 || threshold > 1 {
		log.Warnf("threshold %v is not in range [0, 1], resetting to %v\n", threshold, DefaultRepeatability)
		threshold = DefaultRepeatability
	}

	if err := gl.Validate(); err != nil {
		return nil, err
	}
	metric := gl.RepeatabilityMetric()
	values, err := gl.Metric(metric)
	if err != nil {
		return nil, err
	}

	keep := make([]bool, len(values))
	kept := 0
	for j, r := range values {
		if r >= threshold {
			keep[j] = true
			kept++
		}
	}
	log.Progressf("Filtering on %s >= %v\n", metric, threshold)

	res, err := apply(gl, keep, "filter.reproducibility", map[string]string{
		"threshold": strconv.FormatFloat(threshold, 'f', -1, 64),
		"metric":    metric,
	})
	if err != nil {
		return nil, err
	}

	discarded := gl.NLoc() - res.NLoc()
	if discarded == 0 {
		log.Progressf("No loci with repeatability less than %v\n", threshold)
	}
	if kept == 0 {
		log.Warnf("no loci with %s >= %v, result is empty\n", metric, threshold)
	}
	log.Summaryf("Initial number of loci: %d\nNumber of loci retained: %d\nNumber of loci discarded: %d\n\n",
		gl.NLoc(), res.NLoc(), discarded)
	log.Endf("Completed filter.Repeatability\n\n")
	return res, nil
}
