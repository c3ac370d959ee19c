// Command msg15dump inspects SEVIRI Level 1.5 image headers.
package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-seviri/internal/config"
)

var log = logging.Logger("msg15dump")

type rootOptions struct {
	configPath string
	debug      bool
	offset     int64
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{offset: -1}

	rootCmd := &cobra.Command{
		Use:   "msg15dump",
		Short: "Inspect MSG SEVIRI Level 1.5 image headers",
		Long: `msg15dump decodes the fixed-layout Level 1.5 header found at the start of
SEVIRI native files and in HRIT prologue segments. It prints the header
layout, single fields addressed by path, or the whole header.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				logging.SetAllLoggers(logging.LevelDebug)
			} else {
				logging.SetAllLoggers(logging.LevelInfo)
			}

			if opts.offset < -1 {
				return fmt.Errorf("invalid --offset %d: must not be negative", opts.offset)
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.offset >= 0 {
				cfg.Offset = opts.offset
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&opts.offset, "offset", -1, "bytes to skip before the header (overrides config)")

	rootCmd.AddCommand(newSizeCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
