// Command plainsightd serves the cipher detection API.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plainsight-dev/plainsight/internal/api"
	"github.com/plainsight-dev/plainsight/internal/classical"
	"github.com/plainsight-dev/plainsight/internal/config"
	"github.com/plainsight-dev/plainsight/internal/detect"
	"github.com/plainsight-dev/plainsight/internal/logging"
	"github.com/plainsight-dev/plainsight/internal/metrics"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:     "plainsightd",
		Short:   "Classical cipher detection service",
		Long:    "plainsightd serves the detection engine over REST: it identifies which classical cipher produced a piece of ciphertext and returns the most plausible decryptions ranked by English likeness.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			for _, key := range []string{"api-addr", "metrics-addr", "audit-log"} {
				if cmd.Flags().Changed(key) {
					applyFlagOverride(&cfg, key, cmd)
				}
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to configuration file")
	cmd.Flags().String("api-addr", "", "listen address for the detection API")
	cmd.Flags().String("metrics-addr", "", "listen address for the Prometheus endpoint (empty to disable)")
	cmd.Flags().String("audit-log", "", "file to append audit events to")
	return cmd
}

func applyFlagOverride(cfg *config.Config, key string, cmd *cobra.Command) {
	value, _ := cmd.Flags().GetString(key)
	switch key {
	case "api-addr":
		cfg.APIAddr = value
	case "metrics-addr":
		cfg.MetricsAddr = value
	case "audit-log":
		cfg.AuditLog = value
	}
}

func run(cmd *cobra.Command, cfg config.Config) error {
	opts := []logging.Option{}
	if cfg.AuditLog != "" {
		opts = append(opts, logging.WithFile(cfg.AuditLog))
	}
	logger, err := logging.NewAuditLogger("plainsightd", opts...)
	if err != nil {
		return fmt.Errorf("create audit logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	engine := detect.New(detect.Options{
		Params: classical.Params{
			MaxKeyLen: cfg.VigenereMaxKeyLen,
			MaxIters:  cfg.SubstitutionMaxIters,
		},
		Logger: logger.WithComponent("detect"),
	})

	server, err := api.NewServer(api.Config{
		Addr:          cfg.APIAddr,
		Engine:        engine,
		Logger:        logger.WithComponent("api"),
		DefaultTopN:   cfg.DefaultTopN,
		SolverTimeout: cfg.SolverTimeout,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() { errCh <- server.Run(ctx) }()
	go func() { errCh <- metrics.Serve(ctx, cfg.MetricsAddr) }()

	fmt.Fprintf(cmd.OutOrStdout(), "plainsightd %s listening on %s\n", version, cfg.APIAddr)

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
