/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE resolves the effective equivalence profile once
// - config file options merged with flag options, validated together - and
// builds the shared Normalizer commands read via Normalizer(). Commands
// that never touch the engine (guide) skip resolution so a broken config
// cannot lock users out of the documentation. The noProfileCommands map
// controls which commands skip it.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathnorm/internal/config"
	"github.com/jpl-au/pathnorm/internal/equiv"
)

// noProfileCommands don't need a resolved profile to run.
var noProfileCommands = map[string]bool{
	"pathnorm":   true,
	"guide":      true,
	"help":       true,
	"completion": true,
	"version":    true,
}

var rootCmd = &cobra.Command{
	Use:   "pathnorm",
	Short: "Path-name equivalence engine for virtual file systems",
	Long: `Decides whether two file or directory names refer to the same entry,
under a configurable profile: Unicode canonical form (NFC/NFD) combined
with case folding (full Unicode or ASCII-only).`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if noProfileCommands[cmd.Name()] {
			return nil
		}
		return initNormalizer()
	},
}

// norm is the Normalizer shared by all commands, built in PersistentPreRunE.
var norm *equiv.Normalizer

// Normalizer returns the engine for the effective profile.
func Normalizer() *equiv.Normalizer {
	return norm
}

// initNormalizer merges config-file options with flag options and validates
// them as one set, so config/flag contradictions fail exactly like
// contradictory flags.
func initNormalizer() error {
	opts, err := profileOptions()
	if err != nil {
		return err
	}

	p, err := equiv.NewProfile(opts...)
	if err != nil {
		return fmt.Errorf("resolve profile: %w", err)
	}
	norm = equiv.New(p)
	return nil
}

// profileOptions collects options from the config file and the profile flags.
func profileOptions() ([]equiv.Option, error) {
	var opts []equiv.Option

	if !noConfig {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		opts = cfg.Profile.Options()
	}

	if flagNFC {
		opts = append(opts, equiv.NFC)
	}
	if flagNFD {
		opts = append(opts, equiv.NFD)
	}
	if flagFold {
		opts = append(opts, equiv.FoldUnicode)
	}
	if flagFoldASCII {
		opts = append(opts, equiv.FoldASCII)
	}
	return opts, nil
}

// Execute runs the root command. Exit code 1 indicates error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
