package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"primkit/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print the tool version or work with version numbers",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "primkit v%s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "compare A B",
			Short: "Print -1, 0 or 1 as A sorts before, equal to or after B",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := version.Parse(args[0])
				if err != nil {
					return err
				}
				b, err := version.Parse(args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), version.Compare(a, b))
				return nil
			},
		},
		&cobra.Command{
			Use:   "packed V",
			Short: "Print the 48 bit packed form of V in hex",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := version.Parse(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%#012x\n", v.Packed())
				return nil
			},
		},
	)
	return c
}
