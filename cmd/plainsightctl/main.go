// Command plainsightctl runs the detection engine from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the plainsightctl CLI.
var rootCmd = &cobra.Command{
	Use:     "plainsightctl",
	Short:   "Classical cipher detection toolkit",
	Long:    "plainsightctl runs the cipher detection engine in-process: it searches the key space of each supported classical cipher, scores the decryptions for English likeness, and prints the ranked candidates.",
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
