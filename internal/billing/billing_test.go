package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUpToHalf(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "already aligned", value: 5.0, want: 5.0},
		{name: "half aligned", value: 7.5, want: 7.5},
		{name: "just above whole", value: 5.01, want: 5.5},
		{name: "just above half", value: 7.51, want: 8.0},
		{name: "zero", value: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundUpToHalf(tt.value))
		})
	}
}

func TestFinalCost(t *testing.T) {
	tests := []struct {
		name         string
		elapsed      int64
		accrued      float64
		pricePerHour float64
		want         float64
	}{
		{
			name:         "ten minutes bills the half-rate minimum",
			elapsed:      600,
			accrued:      600.0 / 3600 * 10,
			pricePerHour: 10,
			want:         5.0,
		},
		{
			name:         "thirty minutes at 10 per hour meets the minimum exactly",
			elapsed:      1800,
			accrued:      1800.0 / 3600 * 10,
			pricePerHour: 10,
			want:         5.0,
		},
		{
			name:         "forty minutes rounds above the minimum",
			elapsed:      2400,
			accrued:      2400.0 / 3600 * 10, // 6.67
			pricePerHour: 10,
			want:         7.0,
		},
		{
			name:         "odd rate minimum is half-unit aligned",
			elapsed:      300,
			accrued:      300.0 / 3600 * 6.5,
			pricePerHour: 6.5, // half rate 3.25 rounds to 3.5
			want:         3.5,
		},
		{
			name:         "exactly one hour escapes the minimum rule",
			elapsed:      3600,
			accrued:      10,
			pricePerHour: 10,
			want:         10.0,
		},
		{
			name:         "long session rounds accrued cost up",
			elapsed:      5400,
			accrued:      5400.0 / 3600 * 10, // 15.0
			pricePerHour: 10,
			want:         15.0,
		},
		{
			name:         "long session with ragged accrual",
			elapsed:      5460,
			accrued:      5460.0 / 3600 * 10, // 15.17
			pricePerHour: 10,
			want:         15.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalCost(tt.elapsed, tt.accrued, tt.pricePerHour))
		})
	}
}
