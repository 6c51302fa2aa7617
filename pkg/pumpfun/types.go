package pumpfun

import (
	"bytes"
	"encoding/json"

	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

// Numeric decodes JSON values the API serves inconsistently as numbers,
// numeric strings, or null. Anything non-numeric decodes to zero instead of
// failing the whole record.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		f, err := utils.ParseFloat(s)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Numeric(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Numeric(f)
	return nil
}

func (n Numeric) Float64() float64 {
	return float64(n)
}

// Token is a coin record as returned by the coin endpoints. Field coverage
// varies by endpoint; absent fields stay at their zero values.
type Token struct {
	Mint                   string  `json:"mint"`
	Name                   string  `json:"name"`
	Symbol                 string  `json:"symbol"`
	Description            string  `json:"description,omitempty"`
	ImageURI               string  `json:"image_uri,omitempty"`
	MetadataURI            string  `json:"metadata_uri,omitempty"`
	Creator                string  `json:"creator,omitempty"`
	CreatedTimestamp       int64   `json:"created_timestamp,omitempty"`
	Price                  Numeric `json:"price,omitempty"`
	PriceUSD               Numeric `json:"price_usd,omitempty"`
	PriceChange24h         Numeric `json:"price_change_24h,omitempty"`
	TotalSupply            Numeric `json:"total_supply,omitempty"`
	MarketCap              Numeric `json:"market_cap,omitempty"`
	USDMarketCap           Numeric `json:"usd_market_cap,omitempty"`
	VirtualSolReserves     Numeric `json:"virtual_sol_reserves,omitempty"`
	VirtualTokenReserves   Numeric `json:"virtual_token_reserves,omitempty"`
	LiquidityUSD           Numeric `json:"liquidity_usd,omitempty"`
	ReplyCount             int     `json:"reply_count,omitempty"`
	LastReply              int64   `json:"last_reply,omitempty"`
	KingOfTheHillTimestamp int64   `json:"king_of_the_hill_timestamp,omitempty"`
	RaydiumPool            string  `json:"raydium_pool,omitempty"`
	Complete               bool    `json:"complete,omitempty"`
	NSFW                   bool    `json:"nsfw,omitempty"`
	Twitter                string  `json:"twitter,omitempty"`
	Telegram               string  `json:"telegram,omitempty"`
	Website                string  `json:"website,omitempty"`

	// Derived, never sent by the API.
	ExplorerURL string `json:"explorer_url,omitempty"`
}

// Trade is a single swap against a token's bonding curve.
type Trade struct {
	Signature   string  `json:"signature"`
	Mint        string  `json:"mint"`
	IsBuy       bool    `json:"is_buy"`
	SolAmount   Numeric `json:"sol_amount"`
	TokenAmount Numeric `json:"token_amount"`
	AmountIn    Numeric `json:"amount_in,omitempty"`
	AmountOut   Numeric `json:"amount_out,omitempty"`
	Price       Numeric `json:"price,omitempty"`
	User        string  `json:"user"`
	Username    string  `json:"username,omitempty"`
	TokenSymbol string  `json:"token_symbol,omitempty"`
	Timestamp   int64   `json:"timestamp"`
	Slot        int64   `json:"slot,omitempty"`
	TxIndex     int     `json:"tx_index,omitempty"`
}

// UnitPrice returns the SOL price per token implied by the trade amounts,
// falling back to the reported price field when amounts are missing.
func (t Trade) UnitPrice() float64 {
	if t.TokenAmount > 0 && t.SolAmount > 0 {
		return float64(t.SolAmount) / float64(t.TokenAmount)
	}
	return float64(t.Price)
}

// Holding is one token position in a wallet's balance listing.
type Holding struct {
	Mint     string  `json:"mint"`
	Symbol   string  `json:"symbol,omitempty"`
	Name     string  `json:"name,omitempty"`
	ImageURI string  `json:"image_uri,omitempty"`
	Balance  Numeric `json:"balance"`
	Price    Numeric `json:"price,omitempty"`

	// Derived: balance x price.
	Value float64 `json:"value,omitempty"`
}

// Comment is a reply on a token's board.
type Comment struct {
	ID         int64  `json:"id"`
	Mint       string `json:"mint"`
	Text       string `json:"text"`
	FileURI    string `json:"file_uri,omitempty"`
	User       string `json:"user"`
	Username   string `json:"username,omitempty"`
	Timestamp  int64  `json:"timestamp"`
	TotalLikes int    `json:"total_likes,omitempty"`
}

type SearchParams struct {
	Term        string
	Creator     string
	Limit       int
	Offset      int
	Sort        string
	Order       string
	IncludeNSFW bool
	SearchType  string // "exact" or "fuzzy"
}

type LatestCoinsParams struct {
	Limit       int
	Offset      int
	IncludeNSFW bool
}

type HoldingsParams struct {
	Limit      int
	Offset     int
	MinBalance int
}

type TradesParams struct {
	Limit       int
	Offset      int
	MinimumSize int64
}
