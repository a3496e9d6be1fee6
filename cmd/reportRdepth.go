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

// reportRdepthCmd represents the reportRdepth command
var reportRdepthCmd = &cobra.Command{
	Use:   "reportRdepth",
	Short: "Summarise read depth and sweep candidate thresholds",
	Long: `Computes min/max/mean of the rdepth metric and a 21-point
threshold sweep table showing how many loci each candidate cutoff would
retain. Optionally renders a histogram and a box-and-whisker chart.`,
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

		logger.Audit("REPORT", "PROGRAM", "RDEPTH", "STATUS", "STARTED")
		table, err := report.ReadDepth(gl, report.Options{
			Histogram: hist,
			Boxplot:   box,
			OutDir:    resultsDir,
			Verbose:   verbosity,
		})
		if err != nil {
			logger.Audit("REPORT", "PROGRAM", "RDEPTH", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error reporting on read depth: %v\n", err)
			return
		}

		sweepOut := filepath.Join(resultsDir, "rdepth_sweep.tsv")
		if err := writeSweep(table, sweepOut); err != nil {
			logger.Audit("REPORT", "PROGRAM", "RDEPTH", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error writing sweep table: %v\n", err)
			return
		}
		logger.Audit("REPORT", "PROGRAM", "RDEPTH", "STATUS", "COMPLETED")
		fmt.Printf("Sweep table saved at: %s\n", sweepOut)
	},
}

func init() {
	rootCmd.AddCommand(reportRdepthCmd)

	datasetFlags(reportRdepthCmd)
	reportRdepthCmd.Flags().Bool("hist", false, "render a read depth histogram")
	reportRdepthCmd.Flags().Bool("box", false, "render a read depth box-and-whisker chart")
	reportRdepthCmd.Flags().StringP("out", "o", ".", "output directory")
}
