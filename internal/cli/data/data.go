// Package data holds the maintenance commands for the local data file
package data

import (
	"time"

	"github.com/spf13/cobra"
)

// now is replaced in tests that need a fixed clock
var now = time.Now

// Commands returns every data maintenance command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		StatsCmd(),
		SeedCmd(),
		ExportCmd(),
		ImportCmd(),
		ResetCmd(),
		LoginCmd(),
		LogoutCmd(),
		WhoamiCmd(),
	}
}
