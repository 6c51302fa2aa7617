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
	limit := flag.Int("limit", 5, "number of results to return")
	exact := flag.Bool("exact", false, "use exact match only, skipping the fuzzy pass")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: search-coins [flags] <search term>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	term := flag.Arg(0)

	logger := utils.NewLogger("search-coins")
	cfg := config.Load()
	client := pumpfun.NewClient(cfg.PumpFun, logger)

	var tokens []pumpfun.Token
	var err error
	if *exact {
		tokens, err = client.SearchCoins(pumpfun.SearchParams{Term: term, Limit: *limit})
	} else {
		tokens, err = analyzer.New(client, logger).SearchTokens(term, *limit)
	}
	if err != nil {
		logger.WithError(err).Fatal("Search failed")
	}

	if len(tokens) == 0 {
		fmt.Printf("No tokens found for %q\n", term)
		return
	}

	fmt.Println(display.Header(fmt.Sprintf("Search results for %q", term)))
	fmt.Println(display.Rule(80))
	for i, t := range tokens {
		fmt.Printf("%d. %s (%s)\n", i+1, t.Name, t.Symbol)
		fmt.Printf("   %s %s\n", display.Label("Mint:"), t.Mint)
		if t.MarketCap > 0 {
			fmt.Printf("   %s %s\n", display.Label("Market Cap:"), display.FormatUSD(t.MarketCap.Float64()))
		}
		if t.CreatedTimestamp > 0 {
			fmt.Printf("   %s %s\n", display.Label("Created:"), display.FormatTimestamp(t.CreatedTimestamp))
		}
		fmt.Printf("   %s %s\n", display.Label("Explorer:"), t.ExplorerURL)
	}
}
