package report

import (
	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
)

// Repeatability summarises the repeatability metric (RepAvg for SNP data,
// Reproducibility for presence/absence data) and returns a 21-point sweep
// table between the observed minimum and 1.0, the maximum attainable score.
func Repeatability(gl *genlight.Genlight, opt Options) ([]SweepRow, error) {
	v := utils.CheckVerbosity(opt.Verbose)
	log := utils.NewLogger(v, nil)
	log.Startf("Starting report.Repeatability ...\n\n")

	if err := gl.Validate(); err != nil {
		return nil, err
	}
	metric := gl.RepeatabilityMetric()
	values, err := gl.Metric(metric)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNoLoci
	}

	stats := Describe(values)
	summarise(log, gl, metric, stats)

	table := BuildSweep(values, stats.Min, 1.0, SweepPoints)

	renderPlots(log, values, metric, "repeatability", opt)
	log.Endf("Completed report.Repeatability\n\n")
	return table, nil
}
