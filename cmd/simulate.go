/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Konoutan/dartR/genlight"
	"github.com/Konoutan/dartR/utils"
	"github.com/spf13/cobra"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate a random dataset for trying out thresholds",
	Run: func(cmd *cobra.Command, args []string) {
		nInd, iErr := cmd.Flags().GetInt("inds")
		if iErr != nil {
			fmt.Println("Error getting inds flag")
			return
		}
		nLoc, lErr := cmd.Flags().GetInt("loci")
		if lErr != nil {
			fmt.Println("Error getting loci flag")
			return
		}
		ploidy, pErr := cmd.Flags().GetInt("ploidy")
		if pErr != nil {
			fmt.Println("Error getting ploidy flag")
			return
		}
		seed, sErr := cmd.Flags().GetUint64("seed")
		if sErr != nil {
			fmt.Println("Error getting seed flag")
			return
		}
		out, oErr := cmd.Flags().GetString("out")
		if oErr != nil {
			fmt.Println("Error getting out flag")
			return
		}

		kind := genlight.Biallelic
		if ploidy == 1 {
			kind = genlight.PresenceAbsence
		}

		resultsDir, err := utils.CreateResultsDir(out)
		if err != nil {
			fmt.Printf("Error creating results directory: %v\n", err)
			return
		}

		gl := genlight.Simulate(nInd, nLoc, kind, seed)
		genoOut := filepath.Join(resultsDir, "simulated_geno.tsv")
		lociOut := filepath.Join(resultsDir, "simulated_loci.tsv")
		if err := genlight.Write(gl, genoOut, lociOut); err != nil {
			fmt.Printf("Error writing simulated dataset: %v\n", err)
			return
		}
		fmt.Printf("Simulated %d individuals x %d loci (%s) saved at: %s\n", nInd, nLoc, kind, resultsDir)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Int("inds", 50, "number of individuals")
	simulateCmd.Flags().Int("loci", 1000, "number of loci")
	simulateCmd.Flags().IntP("ploidy", "p", 2, "ploidy: 2 for SNP data, 1 for presence/absence data")
	simulateCmd.Flags().Uint64("seed", 1, "random seed")
	simulateCmd.Flags().StringP("out", "o", ".", "output directory")
}
