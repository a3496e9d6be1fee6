/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Konoutan/dartR/filter"
	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
	"github.com/spf13/cobra"
)

// filterReproducibilityCmd represents the filterReproducibility command
var filterReproducibilityCmd = &cobra.Command{
	Use:   "filterReproducibility",
	Short: "Remove loci below a repeatability threshold",
	Long: `Keeps only loci whose repeatability score (RepAvg for SNP data,
Reproducibility for presence/absence data) is at least the threshold, and
writes the filtered dataset into a timestamped results directory.
Thresholds outside [0, 1] are reset to the default with a warning.`,
	Run: func(cmd *cobra.Command, args []string) {
		threshold, tErr := cmd.Flags().GetFloat64("threshold")
		if tErr != nil {
			fmt.Println("Error getting threshold flag")
			return
		}
		out, oErr := cmd.Flags().GetString("out")
		if oErr != nil {
			fmt.Println("Error getting out flag")
			return
		}

		gl, err := loadDataset(cmd)
		if err != nil {
			fmt.Printf("Error loading dataset: %v\n", err)
			return
		}

		resultsDir, err := utils.CreateResultsDir(out)
		if err != nil {
			fmt.Printf("Error creating results directory: %v\n", err)
			return
		}
		logFile, err := utils.OpenRunLog(resultsDir)
		if err != nil {
			fmt.Printf("Error opening run log: %v\n", err)
			return
		}
		defer logFile.Close()
		logger := utils.NewLogger(utils.CheckVerbosity(verbosity), logFile)

		logger.Audit("FILTER", "PROGRAM", "REPRODUCIBILITY", "STATUS", "STARTED")
		res, err := filter.Repeatability(gl, threshold, verbosity)
		if err != nil {
			logger.Audit("FILTER", "PROGRAM", "REPRODUCIBILITY", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error filtering on repeatability: %v\n", err)
			return
		}

		genoOut := filepath.Join(resultsDir, "filtered_geno.tsv")
		lociOut := filepath.Join(resultsDir, "filtered_loci.tsv")
		if err := genlight.Write(res, genoOut, lociOut); err != nil {
			logger.Audit("FILTER", "PROGRAM", "REPRODUCIBILITY", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error writing filtered dataset: %v\n", err)
			return
		}
		logger.Audit("FILTER", "PROGRAM", "REPRODUCIBILITY", "STATUS", "COMPLETED",
			"RETAINED", res.NLoc(), "DISCARDED", gl.NLoc()-res.NLoc())
		fmt.Printf("Filtered dataset saved at: %s\n", resultsDir)
	},
}

func init() {
	rootCmd.AddCommand(filterReproducibilityCmd)

	datasetFlags(filterReproducibilityCmd)
	filterReproducibilityCmd.Flags().Float64P("threshold", "t", filter.DefaultRepeatability, "minimum repeatability (0-1)")
	filterReproducibilityCmd.Flags().StringP("out", "o", ".", "output directory")
}
