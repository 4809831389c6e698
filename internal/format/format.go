// Package format holds stateless value-to-display-string helpers for the
// admin interface.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
)

// Dollars formats an amount as US dollars with thousands separators.
func Dollars(amount float64) string {
	cents := int64(math.Round(amount * 100))
	return money.New(cents, money.USD).Display()
}

// Percent formats a percentage, dropping decimals when the value is whole.
func Percent(percent float64) string {
	if math.Mod(percent, 1) > 0 {
		return fmt.Sprintf("%.3f%%", percent)
	}
	return fmt.Sprintf("%.0f%%", percent)
}

// Date formats a date in the US convention. Zero dates render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("01/02/2006")
}
