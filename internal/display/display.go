package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
)

// FormatNumber renders large values with K/M/B suffixes.
func FormatNumber(value float64, decimalPlaces int) string {
	switch {
	case value >= 1_000_000_000:
		return fmt.Sprintf("%.*fB", decimalPlaces, value/1_000_000_000)
	case value >= 1_000_000:
		return fmt.Sprintf("%.*fM", decimalPlaces, value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%.*fK", decimalPlaces, value/1_000)
	default:
		return fmt.Sprintf("%.*f", decimalPlaces, value)
	}
}

// FormatTimestamp renders a Unix timestamp, accepting both seconds and
// milliseconds. Zero renders as N/A.
func FormatTimestamp(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	if ts > 1e12 {
		ts = ts / 1000
	}
	return time.Unix(ts, 0).Format("2006-01-02 15:04:05")
}

// FormatUSD renders a dollar amount with thousands-friendly suffixes.
func FormatUSD(value float64) string {
	return "$" + FormatNumber(value, 2)
}

// Change colors a percentage move green or red with a direction arrow.
func Change(pct float64) string {
	if pct >= 0 {
		return aurora.Green(fmt.Sprintf("↑ %.2f%%", pct)).String()
	}
	return aurora.Red(fmt.Sprintf("↓ %.2f%%", -pct)).String()
}

// Side colors a trade side the way tickers do.
func Side(isBuy bool) string {
	if isBuy {
		return aurora.Bold(aurora.Green("BUY")).String()
	}
	return aurora.Bold(aurora.Red("SELL")).String()
}

func Header(text string) string {
	return aurora.Bold(aurora.Yellow(text)).String()
}

func Label(text string) string {
	return aurora.Cyan(text).String()
}

func Rule(width int) string {
	return strings.Repeat("-", width)
}

// Chart renders a price series as a fixed-height ASCII chart, oldest value on
// the left. Returns an empty string when there is nothing to draw.
func Chart(prices []float64, width, height int) string {
	if len(prices) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	// Downsample to the requested width.
	sampled := make([]float64, 0, width)
	if len(prices) <= width {
		sampled = append(sampled, prices...)
	} else {
		step := float64(len(prices)) / float64(width)
		for i := 0; i < width; i++ {
			sampled = append(sampled, prices[int(float64(i)*step)])
		}
	}

	min, max := sampled[0], sampled[0]
	for _, p := range sampled {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	span := max - min
	rows := make([][]byte, height)
	for i := range rows {
		rows[i] = []byte(strings.Repeat(" ", len(sampled)))
	}

	for col, p := range sampled {
		level := 0
		if span > 0 {
			level = int((p - min) / span * float64(height-1))
		}
		rows[height-1-level][col] = '*'
	}

	var b strings.Builder
	fmt.Fprintf(&b, "high %s\n", FormatNumber(max, 8))
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "low  %s", FormatNumber(min, 8))
	return b.String()
}
