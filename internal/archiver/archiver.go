package archiver

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
)

// TradeSource is the slice of the API client the archiver needs.
type TradeSource interface {
	GetAllTrades(tokenAddress string, batchSize, maxTrades int, minimumSize int64) ([]pumpfun.Trade, error)
}

// TradeStore is the persistence side, satisfied by *Repository.
type TradeStore interface {
	BulkInsertTrades(ctx context.Context, trades []pumpfun.Trade) error
}

// Archiver pulls a token's paginated trade history and persists it.
type Archiver struct {
	source    TradeSource
	store     TradeStore
	logger    *logrus.Logger
	batchSize int
}

func New(source TradeSource, store TradeStore, batchSize int, logger *logrus.Logger) *Archiver {
	if batchSize <= 0 {
		batchSize = 200
	}
	return &Archiver{
		source:    source,
		store:     store,
		logger:    logger,
		batchSize: batchSize,
	}
}

// ArchiveToken fetches up to maxTrades of a token's history and stores them.
// Returns the number of trades fetched.
func (a *Archiver) ArchiveToken(ctx context.Context, tokenAddress string, maxTrades int) (int, error) {
	log := a.logger.WithField("token", tokenAddress)
	log.Info("Archiving trade history")

	trades, err := a.source.GetAllTrades(tokenAddress, a.batchSize, maxTrades, 0)
	if err != nil {
		// Keep whatever pages arrived before the failure.
		if len(trades) == 0 {
			return 0, fmt.Errorf("failed to fetch trades for %s: %w", tokenAddress, err)
		}
		log.WithError(err).WithField("fetched", len(trades)).
			Warn("Trade fetch ended early, archiving partial history")
	}

	if len(trades) == 0 {
		log.Info("No trades to archive")
		return 0, nil
	}

	if err := a.store.BulkInsertTrades(ctx, trades); err != nil {
		return 0, fmt.Errorf("failed to store trades for %s: %w", tokenAddress, err)
	}

	log.WithField("trades", len(trades)).Info("Trade history archived")
	return len(trades), nil
}
