package main

import (
	"github.com/dhamidi/peck/calc"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the calc language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)
			server := calc.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	return cmd
}
