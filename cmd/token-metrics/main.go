package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/paaavkata/pumpfun-client-go/internal/analyzer"
	"github.com/paaavkata/pumpfun-client-go/internal/config"
	"github.com/paaavkata/pumpfun-client-go/internal/display"
	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

func main() {
	maxTrades := flag.Int("trades", 1000, "maximum number of trades to analyze (0 for all)")
	chart := flag.Bool("chart", false, "render an ASCII price chart")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: token-metrics [flags] <token mint address>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	mint := flag.Arg(0)

	logger := utils.NewLogger("token-metrics")
	cfg := config.Load()
	client := pumpfun.NewClient(cfg.PumpFun, logger)
	a := analyzer.New(client, logger)

	stats, err := a.TokenStats(mint, *maxTrades)
	if err != nil {
		logger.WithError(err).Fatal("Failed to compute token metrics")
	}

	fmt.Println(display.Rule(80))
	fmt.Printf("%s %s\n", display.Header("TRADE METRICS"), mint)
	fmt.Println(display.Rule(80))

	if stats.NumTrades == 0 {
		fmt.Println("No trades found for this token.")
		return
	}

	fmt.Printf("%s %d (%d buys / %d sells)\n",
		display.Label("Trades:"), stats.NumTrades, stats.Buys, stats.Sells)
	fmt.Printf("%s %s - %s\n", display.Label("Window:"),
		display.FormatTimestamp(stats.FirstTrade), display.FormatTimestamp(stats.LastTrade))
	fmt.Printf("%s %s SOL\n", display.Label("Volume:"), display.FormatNumber(stats.VolumeSOL, 2))
	if stats.AvgPrice > 0 {
		fmt.Printf("%s high %.10f / avg %.10f / low %.10f SOL\n",
			display.Label("Price:"), stats.HighPrice, stats.AvgPrice, stats.LowPrice)
	}
	fmt.Printf("%s %.4f\n", display.Label("Volatility:"), stats.Volatility)
	fmt.Printf("%s %s\n", display.Label("Trend:"), string(stats.Trend))

	if *chart && len(stats.Prices) > 1 {
		fmt.Println()
		fmt.Println(display.Chart(stats.Prices, 72, 12))
	}
}
