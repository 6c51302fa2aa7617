package pumpfun

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCoinsSendsExpectedQuery(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "doge", q.Get("searchTerm"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "0", q.Get("offset"))
		assert.Equal(t, "market_cap", q.Get("sort"))
		assert.Equal(t, "DESC", q.Get("order"))
		assert.Equal(t, "false", q.Get("includeNsfw"))
		assert.Equal(t, "exact", q.Get("type"))
		fmt.Fprint(w, `{"data": [{"mint": "m1", "symbol": "DOGE2", "name": "Doge Two"}]}`)
	})

	client, _ := newTestClient(t, handler, Config{})

	tokens, err := client.SearchCoins(SearchParams{Term: "doge", Limit: 5})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "DOGE2", tokens[0].Symbol)
}

func TestTokenEnrichmentDerivesMarketCap(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [
			{"mint": "m1", "price": 0.002, "total_supply": 1000000},
			{"mint": "m2", "price": "bad", "total_supply": 1000000},
			{"mint": "m3", "price": 0.5, "total_supply": 100, "market_cap": 999}
		]}`)
	})

	client, _ := newTestClient(t, handler, Config{})

	tokens, err := client.GetLatestCoins(LatestCoinsParams{Limit: 3})
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.InDelta(t, 2000.0, tokens[0].MarketCap.Float64(), 1e-9, "price x supply")
	assert.Zero(t, tokens[1].MarketCap.Float64(), "non-numeric price is skipped silently")
	assert.Equal(t, 999.0, tokens[2].MarketCap.Float64(), "reported market cap wins")

	assert.Equal(t, "https://pump.fun/token/m1", tokens[0].ExplorerURL)
}

func TestGetWalletHoldingsNormalizesAndDerivesValue(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balances/wallet-1", r.URL.Path)
		assert.Equal(t, "-1", r.URL.Query().Get("minBalance"))
		// This endpoint wraps results under "tokens" rather than "data".
		fmt.Fprint(w, `{"tokens": [{"mint": "m1", "symbol": "AAA", "balance": 200, "price": 0.25}]}`)
	})

	client, _ := newTestClient(t, handler, Config{})

	holdings, err := client.GetWalletHoldings("wallet-1", HoldingsParams{})
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, 50.0, holdings[0].Value)
}

func TestGetWalletHoldingsMalformedYieldsEmpty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"unexpected": true}`)
	})

	client, _ := newTestClient(t, handler, Config{})

	holdings, err := client.GetWalletHoldings("wallet-1", HoldingsParams{})
	require.NoError(t, err)
	assert.Empty(t, holdings)
}

func TestGetWalletCreatedCoinsFallsBackToSearch(t *testing.T) {
	var searchHit bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/coins/user-created-coins/creator-1":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error": "unknown route"}`)
		case "/coins/search":
			searchHit = true
			assert.Equal(t, "creator-1", r.URL.Query().Get("creator"))
			fmt.Fprint(w, `{"items": [{"mint": "m1", "creator": "creator-1"}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	client, _ := newTestClient(t, handler, Config{})

	tokens, err := client.GetWalletCreatedCoins("creator-1", LatestCoinsParams{Limit: 10})
	require.NoError(t, err)
	assert.True(t, searchHit)
	require.Len(t, tokens, 1)
	assert.Equal(t, "m1", tokens[0].Mint)
}

func TestGetTokenCommentsDecodesReplies(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/replies/m1", r.URL.Path)
		fmt.Fprint(w, `{"replies": [{"id": 1, "mint": "m1", "text": "to the moon", "user": "u1"}]}`)
	})

	client, _ := newTestClient(t, handler, Config{})

	comments, err := client.GetTokenComments("m1", 5, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "to the moon", comments[0].Text)
}

func TestGetCoinDecodesSingleObject(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/m1", r.URL.Path)
		fmt.Fprint(w, `{"mint": "m1", "symbol": "AAA", "price": 0.1, "total_supply": 1000}`)
	})

	client, _ := newTestClient(t, handler, Config{})

	token, err := client.GetCoin("m1")
	require.NoError(t, err)
	assert.Equal(t, "AAA", token.Symbol)
	assert.InDelta(t, 100.0, token.MarketCap.Float64(), 1e-9)
}

func TestGetAllTradesPagesUntilEmpty(t *testing.T) {
	pages := [][]string{
		{"s1", "s2"},
		{"s3", "s4"},
		{"s5", "s6"},
		{},
	}

	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Less(t, calls, len(pages), "must stop calling after the empty page")
		page := pages[calls]
		calls++

		body := `[`
		for i, sig := range page {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"signature": %q, "mint": "m1"}`, sig)
		}
		body += `]`
		fmt.Fprint(w, body)
	})

	client, _ := newTestClient(t, handler, Config{})

	trades, err := client.GetAllTrades("m1", 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	require.Len(t, trades, 6)
	for i, want := range []string{"s1", "s2", "s3", "s4", "s5", "s6"} {
		assert.Equal(t, want, trades[i].Signature)
	}
}

func TestGetAllTradesHonorsMaxTrades(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		limit := r.URL.Query().Get("limit")
		if calls == 2 {
			assert.Equal(t, "1", limit, "final page request must shrink to the remainder")
			fmt.Fprint(w, `[{"signature": "s3", "mint": "m1"}]`)
			return
		}
		fmt.Fprint(w, `[{"signature": "s1", "mint": "m1"}, {"signature": "s2", "mint": "m1"}]`)
	})

	client, _ := newTestClient(t, handler, Config{})

	trades, err := client.GetAllTrades("m1", 2, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, trades, 3)
}

func TestTradeUnitPrice(t *testing.T) {
	assert.InDelta(t, 0.5, Trade{SolAmount: 10, TokenAmount: 20}.UnitPrice(), 1e-9)
	assert.Equal(t, 1.25, Trade{Price: 1.25}.UnitPrice())
	assert.Zero(t, Trade{}.UnitPrice())
}
