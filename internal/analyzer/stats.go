package analyzer

import (
	"fmt"
	"sort"

	"github.com/markcheno/go-talib"
	"github.com/sirupsen/logrus"

	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

const (
	shortMAPeriod = 5
	longMAPeriod  = 20
)

type Trend string

const (
	TrendUp           Trend = "uptrend"
	TrendDown         Trend = "downtrend"
	TrendFlat         Trend = "flat"
	TrendInsufficient Trend = "insufficient data"
)

// TradeStats summarizes a token's trade history. Prices are the SOL/token
// ratios implied by the trade amounts, in chronological order.
type TradeStats struct {
	Mint       string
	NumTrades  int
	Buys       int
	Sells      int
	HighPrice  float64
	LowPrice   float64
	AvgPrice   float64
	VolumeSOL  float64
	Volatility float64
	Trend      Trend
	FirstTrade int64
	LastTrade  int64
	Prices     []float64
}

// TokenStats fetches up to maxTrades of a token's history and computes its
// trade statistics. maxTrades <= 0 fetches everything.
func (a *Analyzer) TokenStats(tokenAddress string, maxTrades int) (*TradeStats, error) {
	trades, err := a.client.GetAllTrades(tokenAddress, 200, maxTrades, 0)
	if err != nil {
		a.logger.WithError(err).WithField("token", tokenAddress).Error("Failed to fetch trade history")
		return nil, fmt.Errorf("failed to fetch trade history: %w", err)
	}

	stats := ComputeTradeStats(tokenAddress, trades)

	a.logger.WithFields(logrus.Fields{
		"token":      tokenAddress,
		"num_trades": stats.NumTrades,
		"trend":      stats.Trend,
	}).Info("Computed trade statistics")

	return stats, nil
}

// ComputeTradeStats derives statistics from a trade list in any order;
// results are chronological.
func ComputeTradeStats(mint string, trades []pumpfun.Trade) *TradeStats {
	stats := &TradeStats{Mint: mint, Trend: TrendInsufficient}
	if len(trades) == 0 {
		return stats
	}

	ordered := make([]pumpfun.Trade, len(trades))
	copy(ordered, trades)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	stats.NumTrades = len(ordered)
	stats.FirstTrade = ordered[0].Timestamp
	stats.LastTrade = ordered[len(ordered)-1].Timestamp

	var priceSum float64
	for _, trade := range ordered {
		if trade.IsBuy {
			stats.Buys++
		} else {
			stats.Sells++
		}
		stats.VolumeSOL += trade.SolAmount.Float64() / lamportsPerSol

		price := trade.UnitPrice()
		if price <= 0 {
			continue
		}
		stats.Prices = append(stats.Prices, price)
		priceSum += price

		if stats.HighPrice == 0 || price > stats.HighPrice {
			stats.HighPrice = price
		}
		if stats.LowPrice == 0 || price < stats.LowPrice {
			stats.LowPrice = price
		}
	}

	if len(stats.Prices) > 0 {
		stats.AvgPrice = priceSum / float64(len(stats.Prices))
	}
	stats.Volatility = utils.CalculateVolatility(stats.Prices)
	stats.Trend = detectTrend(stats.Prices)

	return stats
}

// detectTrend compares the short and long simple moving averages of the
// price series, the same crossover signal traders use.
func detectTrend(prices []float64) Trend {
	if len(prices) < longMAPeriod {
		return TrendInsufficient
	}

	shortMA := talib.Sma(prices, shortMAPeriod)
	longMA := talib.Sma(prices, longMAPeriod)

	last := len(prices) - 1
	switch {
	case shortMA[last] > longMA[last]:
		return TrendUp
	case shortMA[last] < longMA[last]:
		return TrendDown
	default:
		return TrendFlat
	}
}
