/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Konoutan/dartR/report"
	"github.com/Konoutan/dartR/utils"
	"github.com/spf13/cobra"
)

// reportReproducibilityCmd represents the reportReproducibility command
var reportReproducibilityCmd = &cobra.Command{
	Use:   "reportReproducibility",
	Short: "Summarise repeatability and sweep candidate thresholds",
	Long: `Computes min/max/mean of the repeatability metric (RepAvg for SNP
data, Reproducibility for presence/absence data) and a 21-point threshold
sweep table between the observed minimum and 1.0. Optionally renders a
histogram and a box-and-whisker chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		hist, hErr := cmd.Flags().GetBool("hist")
		if hErr != nil {
			fmt.Println("Error getting hist flag")
			return
		}
		box, bErr := cmd.Flags().GetBool("box")
		if bErr != nil {
			fmt.Println("Error getting box flag")
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

		logger.Audit("REPORT", "PROGRAM", "REPRODUCIBILITY", "STATUS", "STARTED")
		table, err := report.Repeatability(gl, report.Options{
			Histogram: hist,
			Boxplot:   box,
			OutDir:    resultsDir,
			Verbose:   verbosity,
		})
		if err != nil {
			logger.Audit("REPORT", "PROGRAM", "REPRODUCIBILITY", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error reporting on repeatability: %v\n", err)
			return
		}

		sweepOut := filepath.Join(resultsDir, "repeatability_sweep.tsv")
		if err := writeSweep(table, sweepOut); err != nil {
			logger.Audit("REPORT", "PROGRAM", "REPRODUCIBILITY", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error writing sweep table: %v\n", err)
			return
		}
		logger.Audit("REPORT", "PROGRAM", "REPRODUCIBILITY", "STATUS", "COMPLETED")
		fmt.Printf("Sweep table saved at: %s\n", sweepOut)
	},
}

func init() {
	rootCmd.AddCommand(reportReproducibilityCmd)

	datasetFlags(reportReproducibilityCmd)
	reportReproducibilityCmd.Flags().Bool("hist", false, "render a repeatability histogram")
	reportReproducibilityCmd.Flags().Bool("box", false, "render a repeatability box-and-whisker chart")
	reportReproducibilityCmd.Flags().StringP("out", "o", ".", "output directory")
}
