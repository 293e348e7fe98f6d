package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/plainsight-dev/plainsight/internal/classical"
	"github.com/plainsight-dev/plainsight/internal/detect"
)

var (
	detectCipher  string
	detectTopN    int
	detectTimeout time.Duration
)

var detectCmd = &cobra.Command{
	Use:   "detect [ciphertext]",
	Short: "Identify the cipher behind a piece of ciphertext and decrypt it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := detect.ParseKind(detectCipher)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if detectTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, detectTimeout)
			defer cancel()
		}

		engine := detect.New(detect.Options{})
		records, err := engine.Detect(ctx, strings.Join(args, " "), kind, detectTopN)
		if err != nil {
			if errors.Is(err, classical.ErrEmptyInput) {
				return errors.New("ciphertext has no alphabetic content to analyze")
			}
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	},
}

func init() {
	detectCmd.Flags().StringVar(&detectCipher, "cipher", "Auto Detect", "cipher hint (see 'plainsightctl ciphers')")
	detectCmd.Flags().IntVar(&detectTopN, "top", detect.DefaultTopN, "number of candidates to report")
	detectCmd.Flags().DurationVar(&detectTimeout, "timeout", 30*time.Second, "abort the search after this long")
	rootCmd.AddCommand(detectCmd)
}
