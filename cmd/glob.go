// glob.go implements "pathnorm glob": equivalence-aware glob filtering.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathnorm/internal/glob"
)

var globCmd = &cobra.Command{
	Use:   "glob <pattern> <name>...",
	Short: "Filter names with an equivalence-aware glob",
	Long: `Matches names against a glob pattern (*, ?, ** across segments) with
literal pattern text compared under the effective profile, and prints
the names that match.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		pattern := args[0]

		var matched []string
		for _, name := range args[1:] {
			ok, err := glob.Match(pattern, name, norm)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if ok {
				matched = append(matched, name)
			}
		}

		if JSON() {
			if matched == nil {
				matched = []string{}
			}
			return PrintJSON(matched)
		}
		for _, name := range matched {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(globCmd)
}
