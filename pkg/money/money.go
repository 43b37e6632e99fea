package money

import "github.com/shopspring/decimal"

// Round2 rounds to the cooperative's currency precision (2 dp, half up).
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// IsAmount reports whether d is a positive amount with at most 2 decimal places.
func IsAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(2))
}

// ProRata returns weight/sumWeights of total, rounded to 2 dp.
// sumWeights must be positive.
func ProRata(total, weight, sumWeights decimal.Decimal) decimal.Decimal {
	return Round2(total.Mul(weight).Div(sumWeights))
}
