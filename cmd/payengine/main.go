package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iho/payengine/internal/adapter/ops"
	"github.com/iho/payengine/internal/infrastructure/config"
	"github.com/iho/payengine/internal/infrastructure/logger"
	"github.com/iho/payengine/internal/infrastructure/metrics"
	"github.com/iho/payengine/internal/ledger"
	"github.com/iho/payengine/internal/record"
	"github.com/iho/payengine/internal/usecase"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payengine <transactions.csv>",
		Short: "Deterministic batch payments ledger",
		Long: `payengine replays an ordered CSV log of deposits, withdrawals, disputes,
resolves and chargebacks, and prints the final per-client balances as CSV on
stdout. Logs go to stderr so the output stays clean.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the payengine version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return cmd
}

func run(ctx context.Context, path string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().Str("run_id", ulid.Make().String()).Logger()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	if cfg.OpsAddr != "" {
		srv := ops.NewServer(cfg.OpsAddr, registry, log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.OpsShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("ops endpoint shutdown")
			}
		}()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	led := ledger.New(
		ledger.WithLogger(log),
		ledger.WithMetrics(m),
		ledger.WithPolicy(ledger.Policy{AllowRedispute: cfg.AllowRedispute}),
	)

	log.Debug().Str("input", path).Bool("allow_redispute", cfg.AllowRedispute).Msg("starting batch")

	uc := usecase.NewProcessUseCase(led, log)
	if _, err := uc.Run(ctx, record.NewReader(f), record.NewWriter(out)); err != nil {
		return err
	}

	return nil
}
