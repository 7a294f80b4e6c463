/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. The profile flags mirror the engine's symbolic options
// one-to-one; they are collected and validated together with config-file
// options in root.go rather than being checked here. The JSON() helper
// simplifies output format detection across all commands.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var validOutputFormats = []string{"json"}

var (
	output        string
	flagNFC       bool
	flagNFD       bool
	flagFold      bool
	flagFoldASCII bool
	noConfig      bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().BoolVar(&flagNFC, "nfc", false, "Compose (NFC) before comparing")
	rootCmd.PersistentFlags().BoolVar(&flagNFD, "nfd", false, "Decompose (NFD) before comparing")
	rootCmd.PersistentFlags().BoolVar(&flagFold, "fold", false, "Full Unicode case folding")
	rootCmd.PersistentFlags().BoolVar(&flagFoldASCII, "fold-ascii", false, "Case folding for ASCII letters only")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "Ignore config files, use flags only")
}
