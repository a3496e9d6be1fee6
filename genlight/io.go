package genlight

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
)

// Read loads a dataset from a genotype TSV and a locus metrics TSV.
//
// The genotype file has a header of "id", "pop" and one column per locus;
// each following row holds one individual's calls (0/1/2 for SNP data, 0/1
// for presence/absence, "-" for missing). The locus metrics file is a plain
// TSV with one row per locus in the same locus order.
func Read(genoPath, lociPath string, kind Kind) (*Genlight, error) {
	genoFile, err := os.Open(genoPath)
	if err != nil {
		return nil, fmt.Errorf("opening genotype file: %w", err)
	}
	defer genoFile.Close()

	reader := csv.NewReader(genoFile)
	reader.Comma = '\t'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading genotype file %s: %w", genoPath, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("genotype file %s is empty", genoPath)
	}

	header := records[0]
	if len(header) < 2 || header[0] != "id" || header[1] != "pop" {
		return nil, fmt.Errorf("genotype file %s must start with id and pop columns", genoPath)
	}
	nLoc := len(header) - 2

	gl := &Genlight{Kind: kind}
	var anyPop bool
	for _, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("genotype row for %q has %d fields, expected %d", row[0], len(row), len(header))
		}
		gl.Inds = append(gl.Inds, row[0])
		gl.Pops = append(gl.Pops, row[1])
		if row[1] != "" {
			anyPop = true
		}

		calls := make([]int8, nLoc)
		for j, field := range row[2:] {
			if field == "-" || field == "" {
				calls[j] = MissingCall
				continue
			}
			v, cErr := strconv.Atoi(field)
			if cErr != nil || v < 0 || v > kind.Ploidy() {
				return nil, fmt.Errorf("genotype row for %q: bad call %q at locus %s", row[0], field, header[j+2])
			}
			calls[j] = int8(v)
		}
		gl.Geno = append(gl.Geno, calls)
	}
	if !anyPop {
		gl.Pops = nil
	}

	lociFile, err := os.Open(lociPath)
	if err != nil {
		return nil, fmt.Errorf("opening locus metrics file: %w", err)
	}
	defer lociFile.Close()

	gl.Loci = dataframe.ReadCSV(lociFile, dataframe.WithDelimiter('\t'))
	if gl.Loci.Err != nil {
		return nil, fmt.Errorf("reading locus metrics file %s: %w", lociPath, gl.Loci.Err)
	}
	if gl.Loci.Nrow() != nLoc {
		return nil, fmt.Errorf("%w: %d metric rows in %s for %d loci in %s",
			ErrInvalidDataset, gl.Loci.Nrow(), lociPath, nLoc, genoPath)
	}

	if err := gl.Validate(); err != nil {
		return nil, err
	}
	return gl, nil
}

// Write saves the dataset as the pair of TSV files Read understands.
func Write(gl *Genlight, genoPath, lociPath string) error {
	genoFile, err := os.Create(genoPath)
	if err != nil {
		return fmt.Errorf("creating genotype file: %w", err)
	}
	defer genoFile.Close()

	writer := csv.NewWriter(genoFile)
	writer.Comma = '\t'
	defer writer.Flush()

	header := []string{"id", "pop"}
	header = append(header, locusNames(gl)...)
	if hErr := writer.Write(header); hErr != nil {
		return fmt.Errorf("writing genotype header: %w", hErr)
	}

	for i, ind := range gl.Inds {
		record := make([]string, 0, len(header))
		record = append(record, ind)
		if len(gl.Pops) > 0 {
			record = append(record, gl.Pops[i])
		} else {
			record = append(record, "")
		}
		for _, call := range gl.Geno[i] {
			if call == MissingCall {
				record = append(record, "-")
			} else {
				record = append(record, strconv.Itoa(int(call)))
			}
		}
		if wErr := writer.Write(record); wErr != nil {
			return fmt.Errorf("writing genotype row for %s: %w", ind, wErr)
		}
	}
	writer.Flush()
	if wErr := writer.Error(); wErr != nil {
		return wErr
	}

	lociFile, err := os.Create(lociPath)
	if err != nil {
		return fmt.Errorf("creating locus metrics file: %w", err)
	}
	defer lociFile.Close()

	lociWriter := csv.NewWriter(lociFile)
	lociWriter.Comma = '\t'
	if wErr := lociWriter.WriteAll(gl.Loci.Records()); wErr != nil {
		return fmt.Errorf("writing locus metrics: %w", wErr)
	}
	lociWriter.Flush()
	return lociWriter.Error()
}

// locusNames returns the AlleleID column when present, otherwise synthetic
// L1..Ln names.
func locusNames(gl *Genlight) []string {
	if gl.HasMetric("AlleleID") {
		return gl.Loci.Col("AlleleID").Records()
	}
	names := make([]string, gl.NLoc())
	for j := range names {
		names[j] = fmt.Sprintf("L%d", j+1)
	}
	return names
}
