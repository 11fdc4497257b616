// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// lpm answers longest-prefix-match queries against a table of IP
// subnets: it loads "<subnet>/<len> <tag>" pairs from a file and
// prints, for every address read from stdin, the tag of the most
// specific covering subnet, or "-" if none covers it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaissmai/ptrie/internal/astab"
	"github.com/gaissmai/ptrie/internal/logging"
)

var log = logging.DefaultLogger.WithField(logging.LogSubsys, "lpm")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("lpm failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "lpm -i FILE",
		Short: "longest-prefix-match lookups for IPv4/IPv6 addresses",
		Long: `lpm -i FILE

FILE contains whitespace-separated "<subnet>/<len> <tag>" pairs,
e.g. subnets and their AS numbers. The program expects one IPv4 or
IPv6 address per line on stdin and prints the tag of the longest
covering subnet per address, or "-" if no subnet covers it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.SetDebug(debug)
		},
		RunE: run,
	}

	// malformed arguments print the usage on stdout
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprint(c.OutOrStdout(), c.UsageString())
		return err
	})
	cmd.SetOut(os.Stdout)

	cmd.Flags().StringP("input", "i", "", "input file with subnets and tags")
	cmd.Flags().BoolVarP(&debug, "debug", "D", false, "enable debug logging")

	// the input flag is also settable via environment, LPM_INPUT
	viper.SetEnvPrefix("lpm")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("input", cmd.Flags().Lookup("input")); err != nil {
		panic(err)
	}

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	input := viper.GetString("input")
	if input == "" {
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return errors.New("missing input file, use -i FILE")
	}

	tbl, err := astab.LoadFile(input)
	if err != nil {
		return err
	}

	return astab.Run(tbl, cmd.InOrStdin(), cmd.OutOrStdout())
}
