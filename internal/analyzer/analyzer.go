package analyzer

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

const lamportsPerSol = 1e9

// addressLength is the minimum query length treated as a mint address rather
// than a name or symbol.
const addressLength = 20

type Analyzer struct {
	client *pumpfun.Client
	logger *logrus.Logger
}

func New(client *pumpfun.Client, logger *logrus.Logger) *Analyzer {
	return &Analyzer{
		client: client,
		logger: logger,
	}
}

// TopTokens returns the most recently listed tokens. The API has no real
// ranking endpoint, so latest listings are the closest approximation.
func (a *Analyzer) TopTokens(limit int) ([]pumpfun.Token, error) {
	if limit <= 0 {
		limit = 10
	}

	tokens, err := a.client.GetLatestCoins(pumpfun.LatestCoinsParams{Limit: limit})
	if err != nil {
		a.logger.WithError(err).Error("Failed to fetch top tokens")
		return nil, fmt.Errorf("failed to fetch top tokens: %w", err)
	}

	a.logger.WithField("token_count", len(tokens)).Info("Fetched top tokens")
	return tokens, nil
}

// SearchTokens searches by name, symbol, or address: exact match first, then
// a fuzzy pass for the remainder, deduplicated by mint. Address-shaped
// queries that match nothing fall through to a direct coin lookup.
func (a *Analyzer) SearchTokens(query string, limit int) ([]pumpfun.Token, error) {
	if limit <= 0 {
		limit = 10
	}

	results, err := a.client.SearchCoins(pumpfun.SearchParams{
		Term:       query,
		Limit:      limit,
		SearchType: "exact",
	})
	if err != nil {
		a.logger.WithError(err).WithField("query", query).Error("Exact search failed")
		return nil, fmt.Errorf("search failed: %w", err)
	}

	if len(results) < limit {
		fuzzy, err := a.client.SearchCoins(pumpfun.SearchParams{
			Term:       query,
			Limit:      limit - len(results),
			SearchType: "fuzzy",
		})
		if err != nil {
			a.logger.WithError(err).WithField("query", query).Warn("Fuzzy search failed, keeping exact results")
		} else {
			seen := make(map[string]bool, len(results))
			for _, t := range results {
				seen[t.Mint] = true
			}
			for _, t := range fuzzy {
				if t.Mint != "" && !seen[t.Mint] {
					results = append(results, t)
					seen[t.Mint] = true
				}
			}
		}
	}

	if len(results) == 0 && len(query) > addressLength {
		token, err := a.client.GetCoin(query)
		if err != nil {
			a.logger.WithError(err).WithField("address", query).Debug("Direct token lookup failed")
		} else if token.Mint != "" {
			results = append(results, *token)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}

	a.logger.WithFields(logrus.Fields{
		"query":   query,
		"matches": len(results),
	}).Info("Token search finished")

	return results, nil
}

// TokenAnalysis bundles a token's info with its most recent trades and
// comments. Trade or comment failures degrade to empty sections.
type TokenAnalysis struct {
	Token    *pumpfun.Token
	Trades   []pumpfun.Trade
	Comments []pumpfun.Comment
}

func (a *Analyzer) AnalyzeToken(tokenAddress string) (*TokenAnalysis, error) {
	result := &TokenAnalysis{}

	matches, err := a.client.SearchCoins(pumpfun.SearchParams{
		Term:       tokenAddress,
		Limit:      1,
		SearchType: "exact",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up token %s: %w", tokenAddress, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("token %s not found", tokenAddress)
	}
	result.Token = &matches[0]

	trades, err := a.client.GetTokenTrades(tokenAddress, pumpfun.TradesParams{Limit: 10})
	if err != nil {
		a.logger.WithError(err).WithField("token", tokenAddress).Warn("Failed to fetch trades")
	} else {
		if len(trades) > 5 {
			trades = trades[:5]
		}
		result.Trades = trades
	}

	comments, err := a.client.GetTokenComments(tokenAddress, 5, 0)
	if err != nil {
		a.logger.WithError(err).WithField("token", tokenAddress).Warn("Failed to fetch comments")
	} else {
		if len(comments) > 3 {
			comments = comments[:3]
		}
		result.Comments = comments
	}

	return result, nil
}

// WalletAnalysis bundles a wallet's holdings and created tokens with the
// portfolio value derived from balances and prices.
type WalletAnalysis struct {
	Wallet        string
	Holdings      []pumpfun.Holding
	CreatedTokens []pumpfun.Token
	TotalValue    float64
}

func (a *Analyzer) AnalyzeWallet(walletAddress string) (*WalletAnalysis, error) {
	result := &WalletAnalysis{Wallet: walletAddress}

	holdings, err := a.client.GetWalletHoldings(walletAddress, pumpfun.HoldingsParams{Limit: 50})
	if err != nil {
		a.logger.WithError(err).WithField("wallet", walletAddress).Warn("Failed to fetch holdings")
	} else {
		sort.Slice(holdings, func(i, j int) bool {
			return holdings[i].Value > holdings[j].Value
		})
		result.Holdings = holdings

		total := utils.FloatToDecimal(0)
		for _, h := range holdings {
			total = total.Add(utils.FloatToDecimal(h.Value))
		}
		result.TotalValue = utils.NormalizeTo(utils.DecimalToFloat(total), 6)
	}

	created, err := a.client.GetWalletCreatedCoins(walletAddress, pumpfun.LatestCoinsParams{Limit: 10})
	if err != nil {
		a.logger.WithError(err).WithField("wallet", walletAddress).Warn("Failed to fetch created tokens")
	} else {
		result.CreatedTokens = created
	}

	return result, nil
}

// TopHoldings returns the n most valuable holdings of an analysis.
func (w *WalletAnalysis) TopHoldings(n int) []pumpfun.Holding {
	if n > len(w.Holdings) {
		n = len(w.Holdings)
	}
	return w.Holdings[:n]
}
