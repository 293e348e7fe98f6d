package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plainsight-dev/plainsight/internal/detect"
)

var ciphersCmd = &cobra.Command{
	Use:   "ciphers",
	Short: "List the recognized cipher hints",
	Run: func(cmd *cobra.Command, args []string) {
		for _, hint := range detect.Hints() {
			fmt.Fprintln(cmd.OutOrStdout(), hint)
		}
	},
}

func init() {
	rootCmd.AddCommand(ciphersCmd)
}
