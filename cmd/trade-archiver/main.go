package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/paaavkata/pumpfun-client-go/internal/archiver"
	"github.com/paaavkata/pumpfun-client-go/internal/config"
	"github.com/paaavkata/pumpfun-client-go/pkg/database"
	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

func main() {
	maxTrades := flag.Int("max", 0, "maximum number of trades to archive (0 for all)")
	cleanup := flag.Bool("cleanup", false, "delete archived trades older than the retention window")
	flag.Parse()

	logger := utils.NewLogger("trade-archiver")
	cfg := config.Load()

	if flag.NArg() < 1 && !*cleanup {
		fmt.Fprintln(os.Stderr, "usage: trade-archiver [flags] <token mint address>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	db, err := database.NewConnection(cfg.DbUri, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		logger.WithError(err).Fatal("Database health check failed")
	}

	ctx := context.Background()
	repo := archiver.NewRepository(db, logger)

	if err := repo.EnsureSchema(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to ensure schema")
	}

	if *cleanup {
		deleted, err := repo.CleanupOldTrades(ctx, cfg.DataRetentionDays)
		if err != nil {
			logger.WithError(err).Fatal("Cleanup failed")
		}
		fmt.Printf("Deleted %d trades older than %d days\n", deleted, cfg.DataRetentionDays)
		if flag.NArg() < 1 {
			return
		}
	}

	mint := flag.Arg(0)
	client := pumpfun.NewClient(cfg.PumpFun, logger)
	a := archiver.New(client, repo, cfg.ArchiveBatchSize, logger)

	fetched, err := a.ArchiveToken(ctx, mint, *maxTrades)
	if err != nil {
		logger.WithError(err).Fatal("Archiving failed")
	}

	total, err := repo.CountTrades(ctx, mint)
	if err != nil {
		logger.WithError(err).Fatal("Failed to count archived trades")
	}

	fmt.Printf("Archived %d trades for %s (%d total in store)\n", fetched, mint, total)
}
