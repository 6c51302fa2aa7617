package main

import (
	"flag"
	"fmt"

	"github.com/paaavkata/pumpfun-client-go/internal/config"
	"github.com/paaavkata/pumpfun-client-go/internal/display"
	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

func main() {
	limit := flag.Int("limit", 5, "number of trades to show")
	flag.Parse()

	logger := utils.NewLogger("latest-trades")
	cfg := config.Load()
	client := pumpfun.NewClient(cfg.PumpFun, logger)

	trades, err := client.GetLatestTrades(*limit)
	if err != nil {
		logger.WithError(err).Fatal("Failed to fetch latest trades")
	}

	if len(trades) == 0 {
		fmt.Println("No recent trades found.")
		return
	}

	fmt.Println(display.Header("Latest Trades"))
	fmt.Println(display.Rule(100))
	for _, t := range trades {
		symbol := t.TokenSymbol
		if symbol == "" {
			symbol = t.Mint
		}
		fmt.Printf("%s  %s  %s SOL  %s tokens  %s\n",
			display.FormatTimestamp(t.Timestamp),
			display.Side(t.IsBuy),
			display.FormatNumber(t.SolAmount.Float64()/1e9, 4),
			display.FormatNumber(t.TokenAmount.Float64(), 2),
			symbol,
		)
	}
}
