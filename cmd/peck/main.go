package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "peck",
		Short: "Parser-combinator playground for the peck library",
	}

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
