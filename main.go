/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Konoutan/dartR/cmd"

func main() {
	cmd.Execute()
}
