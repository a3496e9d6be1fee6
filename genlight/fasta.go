package genlight

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ToFasta writes each locus trimmed sequence as a FASTA record, one per
// locus in locus order, named by AlleleID. The dataset must carry a
// TrimmedSequence metadata column.
func ToFasta(gl *Genlight, w io.Writer) error {
	if !gl.HasMetric("TrimmedSequence") {
		return &MissingMetricError{Metric: "TrimmedSequence"}
	}

	names := locusNames(gl)
	seqs := gl.Loci.Col("TrimmedSequence").Records()

	fw := fasta.NewWriter(w, 60)
	for j, s := range seqs {
		rec := linear.NewSeq(names[j], alphabet.BytesToLetters([]byte(s)), alphabet.DNA)
		if _, err := fw.Write(rec); err != nil {
			return fmt.Errorf("writing FASTA record %s: %w", names[j], err)
		}
	}
	return nil
}
