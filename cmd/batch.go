package main

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Parse multiple credit report files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		return processBatch(ctx, args, cfg.Batch.MaxConcurrentFiles, func(ctx context.Context, path string) (*model.ReportRecord, error) {
			return parseFile(ctx, env, path)
		})
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// parseFunc is the callback signature for parsing one file in a batch.
type parseFunc func(ctx context.Context, path string) (*model.ReportRecord, error)

// processBatch parses files concurrently. An individual file failure is
// logged and counted but does not abort the batch.
func processBatch(ctx context.Context, paths []string, concurrency int, parse parseFunc) error {
	if len(paths) == 0 {
		zap.L().Info("no files to process")
		return nil
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("files", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, path := range paths {
		g.Go(func() error {
			log := zap.L().With(zap.String("file", path))

			rec, err := parse(gctx, path)
			if err != nil {
				failed.Add(1)
				log.Error("parse failed", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			log.Info("parse complete",
				zap.String("vendor", string(rec.Vendor)),
				zap.Int("accounts", rec.Data.Summary.TotalAccounts),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
