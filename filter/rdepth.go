package filter

import (
	"strconv"

	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
)

// Default read depth bounds, matching the usual DArT quality window.
const (
	DefaultLowerDepth = 5.0
	DefaultUpperDepth = 50.0
)

// ReadDepth returns a new dataset keeping only loci whose rdepth metric
// lies in [lower, upper], both bounds inclusive. Bounds that exclude every
// locus give an empty but valid dataset, not an error.
func ReadDepth(gl *genlight.Genlight, lower, upper float64, verbose int) (*genlight.Genlight, error) {
	v := utils.CheckVerbosity(verbose)
	log := utils.NewLogger(v, nil)
	log.Startf("Starting filter.ReadDepth ...\n\n")

	values, err := validate(gl, "rdepth")
	if err != nil {
		return nil, err
	}

	if upper < lower {
		log.Warnf("lower bound %v exceeds upper bound %v, swapping\n", lower, upper)
		lower, upper = upper, lower
	}

	keep := make([]bool, len(values))
	kept := 0
	for j, d := range values {
		if d >= lower && d <= upper {
			keep[j] = true
			kept++
		}
	}
	log.Progressf("Filtering on read depth: %v <= rdepth <= %v\n", lower, upper)

	res, err := apply(gl, keep, "filter.rdepth", map[string]string{
		"lower": strconv.FormatFloat(lower, 'f', -1, 64),
		"upper": strconv.FormatFloat(upper, 'f', -1, 64),
	})
	if err != nil {
		return nil, err
	}

	if kept == 0 {
		log.Warnf("no loci within read depth bounds [%v, %v], result is empty\n", lower, upper)
	}
	log.Summaryf("Initial number of loci: %d\nNumber of loci retained: %d\nNumber of loci discarded: %d\n\n",
		gl.NLoc(), res.NLoc(), gl.NLoc()-res.NLoc())
	log.Endf("Completed filter.ReadDepth\n\n")
	return res, nil
}
