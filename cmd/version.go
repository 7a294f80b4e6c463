// version.go implements "pathnorm version".

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathnorm/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build version information",
	RunE: func(_ *cobra.Command, _ []string) error {
		info := version.Get()
		if JSON() {
			return PrintJSON(info)
		}
		fmt.Fprint(out, info.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
