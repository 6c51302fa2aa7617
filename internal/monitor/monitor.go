package monitor

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
)

// interestingMarketCapUSD flags listings that launch with real money behind
// them.
const interestingMarketCapUSD = 10000

var interestingKeywords = []string{"pump", "moon", "btc", "eth", "sol", "meme"}

// CoinSource is the slice of the API client the monitor needs.
type CoinSource interface {
	GetLatestCoins(params pumpfun.LatestCoinsParams) ([]pumpfun.Token, error)
}

// Alert is a newly listed token plus why it was flagged. Reason is empty for
// ordinary listings.
type Alert struct {
	Token  pumpfun.Token
	Reason string
}

// Monitor polls the latest listings on a schedule and reports tokens it has
// not seen before. Checks may overlap when one outlasts the interval (the
// client sleeps on rate limits), so the seen set is guarded by a mutex.
type Monitor struct {
	source    CoinSource
	logger    *logrus.Logger
	cron      *cron.Cron
	interval  time.Duration
	batchSize int
	onAlert   func(Alert)

	mu   sync.Mutex
	seen map[string]bool
}

// New builds a monitor. onAlert is invoked for every new listing; it may be
// nil when log output is enough.
func New(source CoinSource, interval time.Duration, logger *logrus.Logger, onAlert func(Alert)) *Monitor {
	return &Monitor{
		source:    source,
		logger:    logger,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		interval:  interval,
		batchSize: 20,
		seen:      make(map[string]bool),
		onAlert:   onAlert,
	}
}

// Start schedules the periodic check and runs one immediately.
func (m *Monitor) Start() error {
	m.logger.WithField("interval", m.interval).Info("Starting new-token monitor")

	_, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.interval), func() {
		if _, err := m.CheckOnce(); err != nil {
			m.logger.WithError(err).Error("Token check failed")
		}
	})
	if err != nil {
		return err
	}

	m.cron.Start()

	go func() {
		if _, err := m.CheckOnce(); err != nil {
			m.logger.WithError(err).Error("Initial token check failed")
		}
	}()

	return nil
}

func (m *Monitor) Stop() {
	m.logger.Info("Stopping new-token monitor")
	m.cron.Stop()
}

// CheckOnce fetches the latest listings and returns the ones not seen in any
// previous check, flagged when they look interesting.
func (m *Monitor) CheckOnce() ([]Alert, error) {
	tokens, err := m.source.GetLatestCoins(pumpfun.LatestCoinsParams{Limit: m.batchSize})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest coins: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	alerts := []Alert{}
	for _, token := range tokens {
		if token.Mint == "" || m.seen[token.Mint] {
			continue
		}
		m.seen[token.Mint] = true

		alert := Alert{Token: token}
		if interesting, reason := IsInteresting(token); interesting {
			alert.Reason = reason
			m.logger.WithFields(logrus.Fields{
				"mint":   token.Mint,
				"symbol": token.Symbol,
				"reason": reason,
			}).Info("New token alert")
		} else {
			m.logger.WithFields(logrus.Fields{
				"mint":   token.Mint,
				"symbol": token.Symbol,
			}).Debug("New token")
		}

		alerts = append(alerts, alert)
		if m.onAlert != nil {
			m.onAlert(alert)
		}
	}

	m.logger.WithFields(logrus.Fields{
		"checked": len(tokens),
		"new":     len(alerts),
	}).Info("Token check finished")

	return alerts, nil
}

// IsInteresting applies the alert criteria: meaningful launch market cap or
// hype keywords in the name or symbol.
func IsInteresting(token pumpfun.Token) (bool, string) {
	capUSD := token.LiquidityUSD.Float64()
	if capUSD == 0 {
		capUSD = token.USDMarketCap.Float64()
	}
	if capUSD > interestingMarketCapUSD {
		return true, fmt.Sprintf("high initial market cap: $%.2f", capUSD)
	}

	haystack := strings.ToLower(token.Symbol + token.Name)
	for _, kw := range interestingKeywords {
		if strings.Contains(haystack, kw) {
			return true, "contains popular keywords"
		}
	}

	return false, ""
}
