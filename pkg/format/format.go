// Package format renders money and calendar dates for display.
package format

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// DateLayout is the ISO calendar date layout shifts are stored with.
	DateLayout = "2006-01-02"

	displayDateLayout = "Mon, Jan 2, 2006"
	currencyLayout    = "#,###.##"
)

// Currency renders amount as US dollars with grouped thousands and exactly
// two fractional digits. Negative amounts carry the minus before the symbol:
// -1234.5 renders as "-$1,234.50".
func Currency(amount float64) string {
	cents := math.Round(amount*100) / 100
	if cents < 0 {
		return "-$" + humanize.FormatFloat(currencyLayout, -cents)
	}
	return "$" + humanize.FormatFloat(currencyLayout, cents)
}

// Date renders an ISO date as "Tue, Mar 5, 2024". Input that is not an ISO
// date is returned as is.
func Date(iso string) string {
	t, err := time.Parse(DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayDateLayout)
}
