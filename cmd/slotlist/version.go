package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI and slotlist library versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// libraryVersion reports the slotlist module version linked into the binary.
func libraryVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == "github.com/joshuapare/slotlist" {
			if dep.Replace != nil {
				return dep.Version + " (" + dep.Replace.Path + ")"
			}
			return dep.Version
		}
	}
	return "unknown"
}

func runVersion() error {
	if jsonOut {
		return printJSON(map[string]string{
			"version": version,
			"commit":  commit,
			"built":   date,
			"library": libraryVersion(),
			"go":      runtime.Version(),
		})
	}
	fmt.Printf("slotlist %s\n", version)
	fmt.Printf("  commit:  %s\n", commit)
	fmt.Printf("  built:   %s\n", date)
	fmt.Printf("  library: %s\n", libraryVersion())
	fmt.Printf("  go:      %s\n", runtime.Version())
	return nil
}
