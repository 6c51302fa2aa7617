package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/paaavkata/pumpfun-client-go/internal/config"
	"github.com/paaavkata/pumpfun-client-go/internal/display"
	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

func main() {
	limit := flag.Int("limit", 10, "number of holdings to show")
	trades := flag.Bool("trades", false, "also show recent trades for each holding")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: wallet-info [flags] <wallet address>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	wallet := flag.Arg(0)

	logger := utils.NewLogger("wallet-info")
	cfg := config.Load()
	client := pumpfun.NewClient(cfg.PumpFun, logger)

	holdings, err := client.GetWalletHoldings(wallet, pumpfun.HoldingsParams{Limit: *limit})
	if err != nil {
		logger.WithError(err).Fatal("Failed to fetch wallet holdings")
	}

	fmt.Println(display.Header(fmt.Sprintf("Holdings for %s", wallet)))
	fmt.Println(display.Rule(90))

	if len(holdings) == 0 {
		fmt.Println("No token holdings found.")
		return
	}

	for i, h := range holdings {
		name := h.Symbol
		if name == "" {
			name = h.Mint
		}
		fmt.Printf("%d. %s: %s tokens @ $%.8f (%s)\n", i+1, name,
			display.FormatNumber(h.Balance.Float64(), 2), h.Price.Float64(),
			display.FormatUSD(h.Value))

		if *trades && h.Mint != "" {
			recent, err := client.GetTokenTrades(h.Mint, pumpfun.TradesParams{Limit: 3})
			if err != nil {
				logger.WithError(err).WithField("mint", h.Mint).Warn("Failed to fetch trades")
				continue
			}
			for _, tr := range recent {
				fmt.Printf("     %s %s %s SOL\n",
					display.FormatTimestamp(tr.Timestamp), display.Side(tr.IsBuy),
					display.FormatNumber(tr.SolAmount.Float64()/1e9, 4))
			}
		}
	}
}
