package finance

import "github.com/shopspring/decimal"

// SalesTax computes the sales tax owed on a cost at the given rate, rounded
// to whole cents so cached values compare stably against recomputations.
func SalesTax(cost, rate float64) float64 {
	tax := decimal.NewFromFloat(cost).Mul(decimal.NewFromFloat(rate))
	return tax.Round(2).InexactFloat64()
}
