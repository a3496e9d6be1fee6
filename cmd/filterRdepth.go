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

// filterRdepthCmd represents the filterRdepth command
var filterRdepthCmd = &cobra.Command{
	Use:   "filterRdepth",
	Short: "Remove loci whose read depth falls outside a window",
	Long: `Keeps only loci whose rdepth metric lies within [lower, upper],
both bounds inclusive, and writes the filtered dataset into a timestamped
results directory. Locus metadata rows are subset in the same pass.`,
	Run: func(cmd *cobra.Command, args []string) {
		lower, lErr := cmd.Flags().GetFloat64("lower")
		if lErr != nil {
			fmt.Println("Error getting lower flag")
			return
		}
		upper, uErr := cmd.Flags().GetFloat64("upper")
		if uErr != nil {
			fmt.Println("Error getting upper flag")
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

		logger.Audit("FILTER", "PROGRAM", "RDEPTH", "STATUS", "STARTED")
		res, err := filter.ReadDepth(gl, lower, upper, verbosity)
		if err != nil {
			logger.Audit("FILTER", "PROGRAM", "RDEPTH", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error filtering on read depth: %v\n", err)
			return
		}

		genoOut := filepath.Join(resultsDir, "filtered_geno.tsv")
		lociOut := filepath.Join(resultsDir, "filtered_loci.tsv")
		if err := genlight.Write(res, genoOut, lociOut); err != nil {
			logger.Audit("FILTER", "PROGRAM", "RDEPTH", "STATUS", fmt.Sprintf("FAILED: %v", err))
			fmt.Printf("Error writing filtered dataset: %v\n", err)
			return
		}
		logger.Audit("FILTER", "PROGRAM", "RDEPTH", "STATUS", "COMPLETED",
			"RETAINED", res.NLoc(), "DISCARDED", gl.NLoc()-res.NLoc())
		fmt.Printf("Filtered dataset saved at: %s\n", resultsDir)
	},
}

func init() {
	rootCmd.AddCommand(filterRdepthCmd)

	datasetFlags(filterRdepthCmd)
	filterRdepthCmd.Flags().Float64("lower", filter.DefaultLowerDepth, "lower read depth bound (inclusive)")
	filterRdepthCmd.Flags().Float64("upper", filter.DefaultUpperDepth, "upper read depth bound (inclusive)")
	filterRdepthCmd.Flags().StringP("out", "o", ".", "output directory")
}
