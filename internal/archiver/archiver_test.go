package archiver

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
)

type fakeTradeSource struct {
	trades []pumpfun.Trade
	err    error
}

func (f *fakeTradeSource) GetAllTrades(tokenAddress string, batchSize, maxTrades int, minimumSize int64) ([]pumpfun.Trade, error) {
	return f.trades, f.err
}

type fakeTradeStore struct {
	stored []pumpfun.Trade
	err    error
}

func (f *fakeTradeStore) BulkInsertTrades(ctx context.Context, trades []pumpfun.Trade) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, trades...)
	return nil
}

func newTestArchiver(source TradeSource, store TradeStore) *Archiver {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(source, store, 0, logger)
}

func TestArchiveTokenStoresFetchedTrades(t *testing.T) {
	source := &fakeTradeSource{trades: []pumpfun.Trade{
		{Signature: "s1", Mint: "m1"},
		{Signature: "s2", Mint: "m1"},
	}}
	store := &fakeTradeStore{}

	a := newTestArchiver(source, store)

	n, err := a.ArchiveToken(context.Background(), "m1", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, store.stored, 2)
}

func TestArchiveTokenKeepsPartialHistoryOnFetchError(t *testing.T) {
	source := &fakeTradeSource{
		trades: []pumpfun.Trade{{Signature: "s1", Mint: "m1"}},
		err:    errors.New("rate limited"),
	}
	store := &fakeTradeStore{}

	a := newTestArchiver(source, store)

	n, err := a.ArchiveToken(context.Background(), "m1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, store.stored, 1)
}

func TestArchiveTokenFailsWhenNothingFetched(t *testing.T) {
	source := &fakeTradeSource{err: errors.New("down")}
	store := &fakeTradeStore{}

	a := newTestArchiver(source, store)

	_, err := a.ArchiveToken(context.Background(), "m1", 0)
	require.Error(t, err)
	assert.Empty(t, store.stored)
}

func TestArchiveTokenNoTrades(t *testing.T) {
	a := newTestArchiver(&fakeTradeSource{}, &fakeTradeStore{})

	n, err := a.ArchiveToken(context.Background(), "m1", 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestArchiveTokenPropagatesStoreError(t *testing.T) {
	source := &fakeTradeSource{trades: []pumpfun.Trade{{Signature: "s1"}}}
	store := &fakeTradeStore{err: errors.New("db down")}

	a := newTestArchiver(source, store)

	_, err := a.ArchiveToken(context.Background(), "m1", 0)
	require.Error(t, err)
}
