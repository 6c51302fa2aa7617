package pumpfun

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
	"github.com/sirupsen/logrus"
)

// SearchCoins searches tokens by name, symbol, or address.
func (c *Client) SearchCoins(params SearchParams) ([]Token, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	if params.Sort == "" {
		params.Sort = "market_cap"
	}
	if params.Order == "" {
		params.Order = "DESC"
	}
	if params.SearchType == "" {
		params.SearchType = "exact"
	}

	query := map[string]string{
		"searchTerm":  params.Term,
		"limit":       strconv.Itoa(params.Limit),
		"offset":      strconv.Itoa(params.Offset),
		"sort":        params.Sort,
		"order":       params.Order,
		"includeNsfw": strconv.FormatBool(params.IncludeNSFW),
		"type":        params.SearchType,
	}
	if params.Creator != "" {
		query["creator"] = params.Creator
	}

	body, err := c.request(http.MethodGet, "/coins/search", query)
	if err != nil {
		return nil, err
	}

	return c.decodeTokens(body, "/coins/search"), nil
}

// GetCoin fetches a single token by mint address.
func (c *Client) GetCoin(address string) (*Token, error) {
	body, err := c.request(http.MethodGet, "/coins/"+address, nil)
	if err != nil {
		return nil, err
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token %s: %w", address, err)
	}

	enrichToken(&token)
	return &token, nil
}

// GetLatestTrades returns the most recent trades across all tokens.
func (c *Client) GetLatestTrades(limit int) ([]Trade, error) {
	if limit <= 0 {
		limit = 10
	}

	body, err := c.request(http.MethodGet, "/trades/latest", map[string]string{
		"limit": strconv.Itoa(limit),
	})
	if err != nil {
		return nil, err
	}

	return c.decodeTrades(body, "/trades/latest"), nil
}

// GetLatestCoins returns the most recently created tokens, newest first.
func (c *Client) GetLatestCoins(params LatestCoinsParams) ([]Token, error) {
	if params.Limit <= 0 {
		params.Limit = 10
	}

	body, err := c.request(http.MethodGet, "/coins/latest", map[string]string{
		"limit":       strconv.Itoa(params.Limit),
		"offset":      strconv.Itoa(params.Offset),
		"includeNsfw": strconv.FormatBool(params.IncludeNSFW),
		"sort":        "created_timestamp",
		"order":       "desc",
	})
	if err != nil {
		return nil, err
	}

	return c.decodeTokens(body, "/coins/latest"), nil
}

// GetWalletHoldings returns the token balances of a wallet with their derived
// value (balance x price).
func (c *Client) GetWalletHoldings(walletAddress string, params HoldingsParams) ([]Holding, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	if params.MinBalance == 0 {
		params.MinBalance = -1
	}

	body, err := c.request(http.MethodGet, "/balances/"+walletAddress, map[string]string{
		"limit":      strconv.Itoa(params.Limit),
		"offset":     strconv.Itoa(params.Offset),
		"minBalance": strconv.Itoa(params.MinBalance),
	})
	if err != nil {
		return nil, err
	}

	holdings := []Holding{}
	if err := json.Unmarshal(extractList(body), &holdings); err != nil {
		c.logger.WithFields(logrus.Fields{
			"endpoint": "/balances/{wallet}",
			"wallet":   walletAddress,
		}).WithError(err).Warn("Unexpected response shape, returning empty result")
		return []Holding{}, nil
	}

	for i := range holdings {
		value := utils.FloatToDecimal(holdings[i].Balance.Float64()).
			Mul(utils.FloatToDecimal(holdings[i].Price.Float64()))
		holdings[i].Value = utils.DecimalToFloat(value)
	}

	return holdings, nil
}

// GetWalletCreatedCoins returns tokens created by a wallet, falling back to a
// creator-filtered search when the dedicated endpoint fails.
func (c *Client) GetWalletCreatedCoins(walletAddress string, params LatestCoinsParams) ([]Token, error) {
	if params.Limit <= 0 {
		params.Limit = 10
	}

	body, err := c.request(http.MethodGet, "/coins/user-created-coins/"+walletAddress, map[string]string{
		"limit":       strconv.Itoa(params.Limit),
		"offset":      strconv.Itoa(params.Offset),
		"includeNsfw": strconv.FormatBool(params.IncludeNSFW),
		"sort":        "created_timestamp",
		"order":       "desc",
	})
	if err == nil {
		return c.decodeTokens(body, "/coins/user-created-coins/{wallet}"), nil
	}

	c.logger.WithFields(logrus.Fields{
		"wallet": walletAddress,
	}).WithError(err).Warn("user-created-coins endpoint failed, falling back to creator search")

	return c.SearchCoins(SearchParams{
		Creator:     walletAddress,
		Limit:       params.Limit,
		Offset:      params.Offset,
		IncludeNSFW: params.IncludeNSFW,
		Sort:        "created_timestamp",
		Order:       "desc",
	})
}

// GetTokenTrades returns trades for one token.
func (c *Client) GetTokenTrades(tokenAddress string, params TradesParams) ([]Trade, error) {
	if params.Limit <= 0 {
		params.Limit = 200
	}
	if params.MinimumSize == 0 {
		params.MinimumSize = 50000000
	}

	body, err := c.request(http.MethodGet, "/trades/all/"+tokenAddress, map[string]string{
		"limit":       strconv.Itoa(params.Limit),
		"offset":      strconv.Itoa(params.Offset),
		"minimumSize": strconv.FormatInt(params.MinimumSize, 10),
	})
	if err != nil {
		return nil, err
	}

	return c.decodeTrades(body, "/trades/all/{token}"), nil
}

// GetTokenComments returns the reply board of a token.
func (c *Client) GetTokenComments(tokenAddress string, limit, offset int) ([]Comment, error) {
	if limit <= 0 {
		limit = 1000
	}

	body, err := c.request(http.MethodGet, "/replies/"+tokenAddress, map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})
	if err != nil {
		return nil, err
	}

	comments := []Comment{}
	if err := json.Unmarshal(extractList(body), &comments); err != nil {
		c.logger.WithFields(logrus.Fields{
			"endpoint": "/replies/{token}",
			"token":    tokenAddress,
		}).WithError(err).Warn("Unexpected response shape, returning empty result")
		return []Comment{}, nil
	}

	return comments, nil
}

// GetAllTrades pages through a token's trade history with increasing offsets
// until maxTrades is reached or an empty page comes back. maxTrades <= 0
// means no cap. A short pause between pages keeps the load on the API down.
func (c *Client) GetAllTrades(tokenAddress string, batchSize, maxTrades int, minimumSize int64) ([]Trade, error) {
	if batchSize <= 0 {
		batchSize = 200
	}

	all := []Trade{}
	offset := 0

	for {
		if maxTrades > 0 && len(all) >= maxTrades {
			break
		}

		limit := batchSize
		if maxTrades > 0 && maxTrades-len(all) < batchSize {
			limit = maxTrades - len(all)
		}

		batch, err := c.GetTokenTrades(tokenAddress, TradesParams{
			Limit:       limit,
			Offset:      offset,
			MinimumSize: minimumSize,
		})
		if err != nil {
			return all, err
		}
		if len(batch) == 0 {
			break
		}

		all = append(all, batch...)
		offset += len(batch)

		c.sleep(c.pageDelay)
	}

	c.logger.WithFields(logrus.Fields{
		"token":  tokenAddress,
		"trades": len(all),
	}).Debug("Finished paging trade history")

	return all, nil
}

func (c *Client) decodeTokens(body []byte, endpoint string) []Token {
	tokens := []Token{}
	if err := json.Unmarshal(extractList(body), &tokens); err != nil {
		c.logger.WithField("endpoint", endpoint).WithError(err).
			Warn("Unexpected response shape, returning empty result")
		return []Token{}
	}

	for i := range tokens {
		enrichToken(&tokens[i])
	}

	return tokens
}

func (c *Client) decodeTrades(body []byte, endpoint string) []Trade {
	trades := []Trade{}
	if err := json.Unmarshal(extractList(body), &trades); err != nil {
		c.logger.WithField("endpoint", endpoint).WithError(err).
			Warn("Unexpected response shape, returning empty result")
		return []Trade{}
	}

	return trades
}

// enrichToken fills in fields the API leaves out: market cap from price x
// supply when both are present, and the explorer link.
func enrichToken(t *Token) {
	if t.MarketCap == 0 && t.Price > 0 && t.TotalSupply > 0 {
		cap := utils.FloatToDecimal(t.Price.Float64()).
			Mul(utils.FloatToDecimal(t.TotalSupply.Float64()))
		t.MarketCap = Numeric(utils.DecimalToFloat(cap))
	}
	if t.Mint != "" && t.ExplorerURL == "" {
		t.ExplorerURL = "https://pump.fun/token/" + t.Mint
	}
}
