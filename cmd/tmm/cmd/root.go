// SPDX-License-Identifier: MIT
// Package cmd: root command of the tmm binary.
// Device engines hang off the root as subcommands; asking for an unknown
// device is an unknown-subcommand error.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tmm",
	Short: "Transfer Matrix Method spectrum calculator",
	Long: `Computes reflection and transmission spectra of layered optical
devices with the Transfer Matrix Method and emits them as CSV.

Each supported device is a subcommand.

Examples:
  tmm bragg -l 2.1e-6 -p 0.5e-6 -c 0.5 -N 100 --n1 2.2 --n2 2.0 -a 0
  tmm bragg --help`,
	Version: "1.0.0",

	// Errors carry their own [ERROR] prefix; print them once, without
	// the usage dump.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
