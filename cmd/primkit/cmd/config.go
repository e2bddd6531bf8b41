package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"primkit/config"
	"primkit/internal/logging"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect and merge configuration documents",
	}
	c.AddCommand(newConfigMergeCmd(), newConfigGetCmd())
	return c
}

func newConfigMergeCmd() *cobra.Command {
	var (
		policy string
		format string
		env    string
	)
	c := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge documents left to right and print the result",
		Long: `Merge loads every FILE (TOML, YAML or JSON by extension) and merges
them into the first one in order. Policies:
  skip       keep existing names
  union      union the value lists, final on either side stays final
  overwrite  replace existing names unless they are final`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := config.ParseMergePolicy(policy)
			if !ok {
				return errors.Errorf("unknown policy %q", policy)
			}
			out, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == config.FormatAuto {
				out = config.DetectFormat(args[0])
			}

			log := logging.L("cli")
			dst, err := config.Load(args[0])
			if err != nil {
				return err
			}
			for _, path := range args[1:] {
				src, err := config.Load(path)
				if err != nil {
					return err
				}
				report := config.Merge(dst, src, p)
				log.Debug("merged",
					zap.String("file", path),
					zap.Strings("added", report.Added),
					zap.Strings("overwritten", report.Overwritten),
					zap.Strings("blocked", report.Blocked))
			}
			if env != "" {
				report := dst.ApplyEnv(env)
				log.Debug("environment applied", zap.String("prefix", env), zap.Strings("overwritten", report.Overwritten))
			}
			return dst.Encode(cmd.OutOrStdout(), out)
		},
	}
	c.Flags().StringVarP(&policy, "policy", "p", config.OverwriteUnlessFinal.String(), "skip, union or overwrite")
	c.Flags().StringVarP(&format, "format", "f", "", "output format, defaults to the first file's")
	c.Flags().StringVar(&env, "env", "", "overlay PREFIX_* environment variables")
	return c
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE NAME",
		Short: "Print the values of one property, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(args[0])
			if err != nil {
				return err
			}
			p, err := s.Get(args[1])
			if err != nil {
				return err
			}
			if len(p.Values) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p.Values, "\n"))
			}
			return nil
		},
	}
}
