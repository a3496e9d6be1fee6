/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/Konoutan/dartR/genlight"
	"github.com/spf13/cobra"
)

// gl2fastaCmd represents the gl2fasta command
var gl2fastaCmd = &cobra.Command{
	Use:   "gl2fasta",
	Short: "Export locus trimmed sequences to FASTA",
	Run: func(cmd *cobra.Command, args []string) {
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

		f, err := os.Create(out)
		if err != nil {
			fmt.Printf("Error creating FASTA file %s: %v\n", out, err)
			return
		}
		defer f.Close()

		if err := genlight.ToFasta(gl, f); err != nil {
			fmt.Printf("Error exporting FASTA: %v\n", err)
			return
		}
		fmt.Printf("%s created\n", out)
	},
}

func init() {
	rootCmd.AddCommand(gl2fastaCmd)

	datasetFlags(gl2fastaCmd)
	gl2fastaCmd.Flags().StringP("out", "o", "loci.fasta", "output FASTA file")
}
