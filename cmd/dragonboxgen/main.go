// Command dragonboxgen regenerates the power-of-ten cache tables checked
// into internal/cache.
//
// Usage:
//
//	dragonboxgen cache --format binary32 --out internal/cache/binary32_table.go
//	dragonboxgen cache --format binary64 --out internal/cache/binary64_table.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dragonboxgen",
		Short: "Generate and format Dragonbox power-of-ten cache tables",
	}
	root.AddCommand(newCacheCmd())
	return root
}
