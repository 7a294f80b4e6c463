// key.go implements "pathnorm key": equivalence keys for names.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/pathnorm/internal/format"
)

var keyCmd = &cobra.Command{
	Use:   "key <name>...",
	Short: "Print the equivalence key for each name",
	Long: `Prints the key each name normalises to under the effective profile.
Two names refer to the same entry exactly when their keys are equal, so
the key is what a directory map should be indexed by.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		pairs := make([]format.KeyedName, 0, len(args))
		for _, name := range args {
			pairs = append(pairs, format.KeyedName{Name: name, Key: norm.Normalize(name)})
		}

		if JSON() {
			return PrintJSON(pairs)
		}
		format.Keys(out, pairs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
}
