package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/paaavkata/pumpfun-client-go/internal/config"
	"github.com/paaavkata/pumpfun-client-go/internal/display"
	"github.com/paaavkata/pumpfun-client-go/internal/monitor"
	"github.com/paaavkata/pumpfun-client-go/pkg/pumpfun"
	"github.com/paaavkata/pumpfun-client-go/pkg/utils"
)

func main() {
	interval := flag.Duration("interval", 0, "polling interval (overrides MONITOR_INTERVAL)")
	once := flag.Bool("once", false, "run a single check and exit")
	flag.Parse()

	logger := utils.NewLogger("token-monitor")
	cfg := config.Load()
	client := pumpfun.NewClient(cfg.PumpFun, logger)

	if *interval <= 0 {
		*interval = cfg.MonitorInterval
	}

	m := monitor.New(client, *interval, logger, printAlert)

	if *once {
		alerts, err := m.CheckOnce()
		if err != nil {
			logger.WithError(err).Fatal("Token check failed")
		}
		if len(alerts) == 0 {
			fmt.Println("No new tokens.")
		}
		return
	}

	if err := m.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start monitor")
	}
	logger.WithField("interval", *interval).Info("Token monitor started")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received")
	m.Stop()
	logger.Info("Token monitor stopped")
}

func printAlert(a monitor.Alert) {
	t := a.Token
	fmt.Printf("%s %s (%s)\n", display.Header("NEW"), t.Name, t.Symbol)
	fmt.Printf("  %s %s\n", display.Label("Mint:"), t.Mint)
	fmt.Printf("  %s %s\n", display.Label("Created:"), display.FormatTimestamp(t.CreatedTimestamp))
	if cap := marketCapUSD(t); cap > 0 {
		fmt.Printf("  %s %s\n", display.Label("Market Cap:"), display.FormatUSD(cap))
	}
	if a.Reason != "" {
		fmt.Printf("  %s %s\n", display.Label("Alert:"), a.Reason)
	}
	fmt.Printf("  %s %s\n", display.Label("Explorer:"), t.ExplorerURL)
}

func marketCapUSD(t pumpfun.Token) float64 {
	if v := t.LiquidityUSD.Float64(); v > 0 {
		return v
	}
	return t.USDMarketCap.Float64()
}
