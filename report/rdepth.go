package report

import (
	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
)

// ReadDepth summarises the rdepth metric and returns a 21-point threshold
// sweep table over the observed depth range. Read depth is an unbounded
// count, so the sweep anchors on the observed maximum rather than on 1.0.
func ReadDepth(gl *genlight.Genlight, opt Options) ([]SweepRow, error) {
	v := utils.CheckVerbosity(opt.Verbose)
	log := utils.NewLogger(v, nil)
	log.Startf("Starting report.ReadDepth ...\n\n")

	if err := gl.Validate(); err != nil {
		return nil, err
	}
	values, err := gl.Metric("rdepth")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNoLoci
	}

	stats := Describe(values)
	summarise(log, gl, "rdepth", stats)

	table := BuildSweep(values, stats.Min, stats.Max, SweepPoints)

	renderPlots(log, values, "Read depth", "rdepth", opt)
	log.Endf("Completed report.ReadDepth\n\n")
	return table, nil
}
