package ui

import (
	"fmt"
	"strings"
)

// formatMoney renders a backend price as dollars with two decimals.
func formatMoney(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// formatDate trims a backend ISO timestamp down to its date part.
func formatDate(timestamp string) string {
	timestamp = strings.TrimSpace(timestamp)
	if idx := strings.IndexAny(timestamp, "T "); idx > 0 {
		return timestamp[:idx]
	}
	return timestamp
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// truncate shortens value to limit runes, ending with an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// plural appends an s when count is not one.
func plural(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
