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
	top := flag.Int("top", 0, "show the N latest tokens")
	search := flag.String("search", "", "search for tokens by name or symbol")
	token := flag.String("token", "", "analyze a specific token by mint address")
	wallet := flag.String("wallet", "", "analyze a wallet's holdings and created tokens")
	flag.Parse()

	logger := utils.NewLogger("market-analyzer")
	cfg := config.Load()
	client := pumpfun.NewClient(cfg.PumpFun, logger)
	a := analyzer.New(client, logger)

	switch {
	case *top > 0:
		tokens, err := a.TopTokens(*top)
		if err != nil {
			logger.WithError(err).Fatal("Failed to fetch top tokens")
		}
		printTokens(tokens)

	case *search != "":
		tokens, err := a.SearchTokens(*search, 10)
		if err != nil {
			logger.WithError(err).Fatal("Search failed")
		}
		printTokens(tokens)

	case *token != "":
		analysis, err := a.AnalyzeToken(*token)
		if err != nil {
			logger.WithError(err).Fatal("Token analysis failed")
		}
		printTokenAnalysis(analysis)

	case *wallet != "":
		analysis, err := a.AnalyzeWallet(*wallet)
		if err != nil {
			logger.WithError(err).Fatal("Wallet analysis failed")
		}
		printWalletAnalysis(analysis)

	default:
		fmt.Fprintln(os.Stderr, "usage: market-analyzer [--top N | --search TERM | --token ADDRESS | --wallet ADDRESS]")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func printTokens(tokens []pumpfun.Token) {
	if len(tokens) == 0 {
		fmt.Println("No tokens found.")
		return
	}

	var totalCap float64
	for _, t := range tokens {
		totalCap += t.MarketCap.Float64()
	}

	fmt.Println(display.Rule(90))
	fmt.Printf("%s (%d tokens, combined market cap %s)\n",
		display.Header("TOP TOKENS"), len(tokens), display.FormatUSD(totalCap))
	fmt.Println(display.Rule(90))

	for i, t := range tokens {
		fmt.Printf("\n%s %s (%s)\n", display.Header(fmt.Sprintf("#%d", i+1)), t.Name, t.Symbol)
		fmt.Printf("  %s %s\n", display.Label("Mint:"), t.Mint)
		fmt.Printf("  %s %s\n", display.Label("Creator:"), t.Creator)
		fmt.Printf("  %s %s\n", display.Label("Created:"), display.FormatTimestamp(t.CreatedTimestamp))
		if t.Price > 0 {
			fmt.Printf("  %s $%.8f\n", display.Label("Price:"), t.Price.Float64())
		}
		if t.MarketCap > 0 {
			fmt.Printf("  %s %s\n", display.Label("Market Cap:"), display.FormatUSD(t.MarketCap.Float64()))
		}
		if t.PriceChange24h != 0 {
			fmt.Printf("  %s %s\n", display.Label("24h:"), display.Change(t.PriceChange24h.Float64()))
		}
		if t.TotalSupply > 0 {
			fmt.Printf("  %s %s\n", display.Label("Supply:"), display.FormatNumber(t.TotalSupply.Float64(), 0))
		}
		fmt.Printf("  %s %s\n", display.Label("Explorer:"), t.ExplorerURL)
	}
}

func printTokenAnalysis(analysis *analyzer.TokenAnalysis) {
	t := analysis.Token
	fmt.Println(display.Rule(90))
	fmt.Printf("%s %s (%s)\n", display.Header("TOKEN"), t.Name, t.Symbol)
	fmt.Println(display.Rule(90))
	fmt.Printf("%s %s\n", display.Label("Mint:"), t.Mint)
	fmt.Printf("%s %s\n", display.Label("Market Cap:"), display.FormatUSD(t.MarketCap.Float64()))
	fmt.Printf("%s %d\n", display.Label("Replies:"), t.ReplyCount)

	fmt.Printf("\n%s\n", display.Header("Recent Trades"))
	if len(analysis.Trades) == 0 {
		fmt.Println("  none")
	}
	for _, tr := range analysis.Trades {
		fmt.Printf("  %s %s %s SOL by %s\n",
			display.FormatTimestamp(tr.Timestamp), display.Side(tr.IsBuy),
			display.FormatNumber(tr.SolAmount.Float64()/1e9, 4), tr.User)
	}

	fmt.Printf("\n%s\n", display.Header("Recent Comments"))
	if len(analysis.Comments) == 0 {
		fmt.Println("  none")
	}
	for _, c := range analysis.Comments {
		fmt.Printf("  [%s] %s\n", display.FormatTimestamp(c.Timestamp), c.Text)
	}
}

func printWalletAnalysis(analysis *analyzer.WalletAnalysis) {
	fmt.Println(display.Rule(90))
	fmt.Printf("%s %s\n", display.Header("WALLET"), analysis.Wallet)
	fmt.Println(display.Rule(90))
	fmt.Printf("%s %s across %d tokens\n",
		display.Label("Portfolio value:"), display.FormatUSD(analysis.TotalValue), len(analysis.Holdings))

	fmt.Printf("\n%s\n", display.Header("Top Holdings"))
	top := analysis.TopHoldings(5)
	if len(top) == 0 {
		fmt.Println("  none")
	}
	for i, h := range top {
		fmt.Printf("  %d. %s: %s tokens (%s)\n", i+1, h.Symbol,
			display.FormatNumber(h.Balance.Float64(), 2), display.FormatUSD(h.Value))
	}

	fmt.Printf("\n%s\n", display.Header("Created Tokens"))
	if len(analysis.CreatedTokens) == 0 {
		fmt.Println("  none")
	}
	for _, t := range analysis.CreatedTokens {
		fmt.Printf("  %s (%s) created %s\n", t.Name, t.Symbol, display.FormatTimestamp(t.CreatedTimestamp))
	}
}
