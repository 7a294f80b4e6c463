// dupes.go implements "pathnorm dupes": duplicate-name detection.

package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathnorm/internal/dirindex"
	"github.com/jpl-au/pathnorm/internal/format"
)

var dupesCmd = &cobra.Command{
	Use:   "dupes [<name>...]",
	Short: "Group names that collapse to the same entry",
	Long: `Records every name in a directory table keyed by equivalence key and
prints the groups that collide - the names a store using this profile
would treat as one entry. Names are read from arguments, or from stdin
one per line when no arguments are given.`,
	RunE: func(_ *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					names = append(names, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read names: %w", err)
			}
		}

		table := dirindex.New(norm)
		for _, name := range names {
			table.Put(name)
		}
		groups := table.Groups()

		if JSON() {
			if groups == nil {
				groups = [][]string{}
			}
			return PrintJSON(groups)
		}
		format.Groups(out, groups)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dupesCmd)
}
