package queries

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MonthlyRevenueQueryHandler struct {
	db *gorm.DB
}

func NewMonthlyRevenueQueryHandler(db *gorm.DB) MonthlyRevenueQueryHandler {
	return MonthlyRevenueQueryHandler{db: db}
}

// Handle always returns twelve entries, January first.
func (h MonthlyRevenueQueryHandler) Handle(
	ctx context.Context,
	query MonthlyRevenueQuery,
) ([]MonthlyRevenueResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(query.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM paid_at AT TIME ZONE 'UTC')::int AS month,
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS payments
		FROM payments
		WHERE status = ? AND paid_at >= ? AND paid_at < ?
		GROUP BY month
		ORDER BY month
	`, int(payment.Succeeded), from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	months := make([]MonthlyRevenueResponse, 12)
	for i := range months {
		months[i] = MonthlyRevenueResponse{Month: i + 1, Total: decimal.Zero}
	}

	for rows.Next() {
		var month, count int
		var total decimal.Decimal
		if err = rows.Scan(&month, &total, &count); err != nil {
			return nil, err
		}
		if month < 1 || month > 12 {
			continue
		}
		months[month-1].Total = total
		months[month-1].Payments = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return months, nil
}
