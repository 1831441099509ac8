// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Output  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Parse reads the global flags off the root of the command hierarchy, for
// subcommands that were not handed the flags struct directly. Flags the root
// does not define are left at their zero values.
func Parse(cmd *cobra.Command) *Flags {
	pf := cmd.Root().PersistentFlags()

	flags := &Flags{}
	flags.Output, _ = pf.GetString("output")
	flags.Quiet, _ = pf.GetBool("quiet")
	flags.Verbose, _ = pf.GetBool("verbose")
	flags.NoColor, _ = pf.GetBool("no-color")
	return flags
}
