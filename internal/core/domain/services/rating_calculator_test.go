package services_test

import (
	"testing"

	"github.com/Keloce-2005/Back-office/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRatingCalculator_Average(t *testing.T) {
	calc := services.NewRatingCalculator()

	tests := []struct {
		name   string
		scores []int
		want   string
	}{
		{"no scores", nil, "0"},
		{"single score", []int{4}, "4"},
		{"rounded to two decimals", []int{5, 4, 4}, "4.33"},
		{"mixed", []int{1, 2, 3, 4, 5}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Average(tt.scores)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
