package queries

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	minRevenueYear = 2000
	maxRevenueYear = 9999
)

var ErrMonthlyRevenueQueryIsNotConstructed = errors.New(
	"MonthlyRevenueQuery must be created via NewMonthlyRevenueQuery constructor",
)

// MonthlyRevenueQuery sums succeeded payments per calendar month (UTC) of a year.
type MonthlyRevenueQuery struct {
	year int

	guard guard.ConstructorGuard
}

func NewMonthlyRevenueQuery(year int) (MonthlyRevenueQuery, error) {
	if year < minRevenueYear || year > maxRevenueYear {
		return MonthlyRevenueQuery{}, errs.NewValueIsOutOfRangeError("year", year, minRevenueYear, maxRevenueYear)
	}

	return MonthlyRevenueQuery{
		year:  year,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q MonthlyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrMonthlyRevenueQueryIsNotConstructed)
}

func (q MonthlyRevenueQuery) Year() int {
	return q.year
}

// MonthlyRevenueResponse is one month of the year; months without payments
// are reported with zero totals.
type MonthlyRevenueResponse struct {
	Month    int
	Total    decimal.Decimal
	Payments int
}
