/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/report"
	"github.com/spf13/cobra"
)

// datasetFlags registers the flags every dataset-consuming command shares.
func datasetFlags(c *cobra.Command) {
	c.Flags().StringP("geno", "g", "", "genotype TSV file")
	c.Flags().StringP("loci", "l", "", "locus metrics TSV file")
	c.Flags().IntP("ploidy", "p", 2, "ploidy: 2 for SNP data, 1 for presence/absence data")
}

// loadDataset reads the dataset named by the shared flags.
func loadDataset(cmd *cobra.Command) (*genlight.Genlight, error) {
	genoPath, gErr := cmd.Flags().GetString("geno")
	if gErr != nil {
		return nil, gErr
	}
	lociPath, lErr := cmd.Flags().GetString("loci")
	if lErr != nil {
		return nil, lErr
	}
	ploidy, pErr := cmd.Flags().GetInt("ploidy")
	if pErr != nil {
		return nil, pErr
	}

	if _, err := os.Stat(genoPath); err != nil {
		return nil, fmt.Errorf("genotype file %s is not a valid file: %w", genoPath, err)
	}
	if _, err := os.Stat(lociPath); err != nil {
		return nil, fmt.Errorf("locus metrics file %s is not a valid file: %w", lociPath, err)
	}

	kind := genlight.Biallelic
	if ploidy == 1 {
		kind = genlight.PresenceAbsence
	}
	return genlight.Read(genoPath, lociPath, kind)
}

// writeSweep saves a sweep table as TSV.
func writeSweep(rows []report.SweepRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sweep table file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = '\t'
	defer writer.Flush()

	header := []string{"Threshold", "Retained", "RetainedPct", "Filtered", "FilteredPct"}
	if hErr := writer.Write(header); hErr != nil {
		return fmt.Errorf("writing sweep header: %w", hErr)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatFloat(row.Threshold, 'f', 4, 64),
			strconv.Itoa(row.Retained),
			strconv.FormatFloat(row.RetainedPct, 'f', 1, 64),
			strconv.Itoa(row.Filtered),
			strconv.FormatFloat(row.FilteredPct, 'f', 1, 64),
		}
		if wErr := writer.Write(record); wErr != nil {
			return fmt.Errorf("writing sweep row: %w", wErr)
		}
	}
	return nil
}
