package archiver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paaavkata/pumpfun-client-go/pkg/database"
	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
)

const createTradesTable = `
CREATE TABLE IF NOT EXISTS token_trades (
    signature    TEXT PRIMARY KEY,
    mint         TEXT NOT NULL,
    is_buy       BOOLEAN NOT NULL,
    sol_amount   BIGINT NOT NULL,
    token_amount BIGINT NOT NULL,
    price        DOUBLE PRECISION NOT NULL,
    trader       TEXT NOT NULL,
    traded_at    BIGINT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS token_trades_mint_idx ON token_trades (mint, traded_at);
`

type Repository struct {
	db     *database.DB
	logger *logrus.Logger
}

func NewRepository(db *database.DB, logger *logrus.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the trades table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTradesTable); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// BulkInsertTrades stores trades in one statement, skipping signatures that
// were archived before.
func (r *Repository) BulkInsertTrades(ctx context.Context, trades []pumpfun.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	start := time.Now()

	query := `
        INSERT INTO token_trades (signature, mint, is_buy, sol_amount, token_amount, price, trader, traded_at)
        VALUES `

	values := make([]string, 0, len(trades))
	args := make([]interface{}, 0, len(trades)*8)

	for i, trade := range trades {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*8+1, i*8+2, i*8+3, i*8+4, i*8+5, i*8+6, i*8+7, i*8+8))

		args = append(args, trade.Signature, trade.Mint, trade.IsBuy,
			int64(trade.SolAmount), int64(trade.TokenAmount), trade.UnitPrice(),
			trade.User, trade.Timestamp)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (signature) DO NOTHING"

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to bulk insert trades")
		return fmt.Errorf("failed to bulk insert trades: %w", err)
	}

	duration := time.Since(start)
	r.logger.WithFields(logrus.Fields{
		"records_count": len(trades),
		"duration_ms":   duration.Milliseconds(),
	}).Info("Successfully bulk inserted trades")

	return nil
}

// CountTrades returns how many trades are archived for a mint.
func (r *Repository) CountTrades(ctx context.Context, mint string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM token_trades WHERE mint = $1`, mint).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count trades: %w", err)
	}
	return count, nil
}

// CleanupOldTrades deletes archive rows older than the retention window.
func (r *Repository) CleanupOldTrades(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM token_trades WHERE created_at < $1`, cutoff)
	if err != nil {
		r.logger.WithError(err).Error("Failed to cleanup old trades")
		return 0, fmt.Errorf("failed to cleanup old trades: %w", err)
	}

	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		r.logger.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": retentionDays,
		}).Info("Cleaned up old trades")
	}

	return deleted, nil
}
