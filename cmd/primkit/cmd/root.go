// Package cmd wires the primkit command line.
package cmd

import (
	"github.com/spf13/cobra"

	"primkit/internal/logging"
)

// Version of the primkit tool itself.
var Version = "0.1.0"

func NewRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "primkit",
		Short:         "Utilities around configuration documents and versions",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Set(logging.New(cmd.ErrOrStderr(), verbose))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(newConfigCmd(), newVersionCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
