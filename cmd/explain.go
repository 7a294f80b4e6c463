// explain.go implements "pathnorm explain": code-point level view of the
// rewrite from a name to its equivalence key.
//
// Design: the diff runs over one-code-point-per-line listings so that a
// composed/decomposed or folded character shows up as a removed and an
// added line, which survives terminals that render equivalent spellings
// identically.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/pathnorm/internal/diff"
	"github.com/jpl-au/pathnorm/internal/format"
)

var explainCmd = &cobra.Command{
	Use:   "explain <name>",
	Short: "Show the code-point rewrite from a name to its key",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := args[0]
		key := norm.Normalize(name)

		if JSON() {
			return PrintJSON(map[string]any{
				"profile": norm.Profile().String(),
				"input":   name,
				"key":     key,
				"changed": key != name,
			})
		}

		fmt.Fprintf(out, "profile: %s\n", norm.Profile())
		if key == name {
			fmt.Fprintln(out, "key is the input, unchanged")
			return nil
		}

		r := diff.ComputeLines(format.CodePoints(name), format.CodePoints(key), "input", "key")
		colour := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Fprint(out, r.Format(colour))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
