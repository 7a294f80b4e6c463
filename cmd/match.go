// match.go implements "pathnorm match": one-shot candidate matching.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathnorm/internal/format"
)

var matchCmd = &cobra.Command{
	Use:   "match <name> <candidate>...",
	Short: "Test candidates against a compiled name",
	Long: `Compiles <name> into a matcher and tests each candidate against it,
without normalising the stored side up front. Matching is symmetric:
compiling from the candidate and testing the name gives the same answer.

Exits 1 when any candidate does not match, for use in scripts.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := norm.CompilePattern(args[0])

		results := make([]format.MatchResult, 0, len(args)-1)
		misses := 0
		for _, candidate := range args[1:] {
			matched := pattern.Matches(candidate)
			if !matched {
				misses++
			}
			results = append(results, format.MatchResult{Candidate: candidate, Matched: matched})
		}

		if JSON() {
			if err := PrintJSON(results); err != nil {
				return err
			}
		} else {
			format.Matches(out, results)
		}

		if misses > 0 {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("%d of %d candidates do not match %q", misses, len(args)-1, args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
