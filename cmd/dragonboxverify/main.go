// Command dragonboxverify runs the big-integer oracle checks and
// uniform-random sampling sweeps behind this module's testable properties
// (spec P3 round-trip, P4, P5, P6).
//
// Usage:
//
//	dragonboxverify verify cache
//	dragonboxverify verify cache --compact
//	dragonboxverify verify logs
//	dragonboxverify verify random --count 1000000 --policy to-even
//	dragonboxverify verify shorter-interval --format binary64
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
		Use:   "dragonboxverify",
		Short: "Verify the Dragonbox cache, log approximators, and conversion kernels",
	}
	verify := &cobra.Command{
		Use:   "verify",
		Short: "Run a verification sweep",
	}
	verify.AddCommand(newVerifyCacheCmd())
	verify.AddCommand(newVerifyLogsCmd())
	verify.AddCommand(newVerifyRandomCmd())
	verify.AddCommand(newVerifyShorterIntervalCmd())
	root.AddCommand(verify)
	return root
}
