package services

import (
	"github.com/shopspring/decimal"
)

// RatingCalculator derives a user's rating from the scores they received.
type RatingCalculator struct{}

func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Average returns the mean score rounded to two decimals, zero without scores.
func (RatingCalculator) Average(scores []int) decimal.Decimal {
	if len(scores) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, s := range scores {
		sum = sum.Add(decimal.NewFromInt(int64(s)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(scores)))).Round(2)
}
