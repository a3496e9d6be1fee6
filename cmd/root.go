/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dartr",
	Short: "Quality filtering and reporting for DArT SNP datasets",
	Long: `A toolkit for quality control of genlight-style SNP and
presence/absence datasets:
1.	Filter loci on read depth (filterRdepth)
2.	Filter loci on repeatability (filterReproducibility)
3.	Report metric distributions and threshold sweeps (reportRdepth, reportReproducibility)
4.	Simulate datasets for trying out thresholds (simulate)
5.	Export locus trimmed sequences to FASTA (gl2fasta)
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var verbosity int

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "V", 2, "verbosity level 0-5")
}
