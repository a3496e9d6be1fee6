// Package filter removes loci failing a quality threshold from a genlight
// dataset. Each filter returns a new dataset with locus metadata subset in
// the same pass and a provenance record appended; the input is untouched.
package filter

import (
	"github.com/Konoutan/dartR/genlight"
)

// validate runs the shared entry checks: the dataset must be structurally
// sound and must carry the requested metric.
func validate(gl *genlight.Genlight, metric string) ([]float64, error) {
	if err := gl.Validate(); err != nil {
		return nil, err
	}
	return gl.Metric(metric)
}

// apply subsets the dataset by the keep mask and records the call.
func apply(gl *genlight.Genlight, keep []bool, op string, params map[string]string) (*genlight.Genlight, error) {
	res, err := gl.Subset(keep)
	if err != nil {
		return nil, err
	}
	res.AppendHistory(op, params)
	return res, nil
}
