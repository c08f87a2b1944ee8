// Package billing holds the final-cost policy applied when a session is
// finished. Accrued cost while a timer runs is plain elapsed/3600 * rate;
// the rules here only apply to the final bill.
package billing

import "math"

// secondsPerHour is the billing granularity base
const secondsPerHour = 3600

// RoundUpToHalf rounds a cost up to the nearest half currency unit
func RoundUpToHalf(value float64) float64 {
	return math.Ceil(value*2) / 2
}

// FinalCost computes the amount billed for a finished session.
//
// Sessions shorter than one hour are billed at least half the hourly rate,
// so very short sessions still pay for the table setup. Longer sessions pay
// the accrued cost rounded up to the nearest half unit.
func FinalCost(elapsedSeconds int64, accruedCost, pricePerHour float64) float64 {
	rounded := RoundUpToHalf(accruedCost)

	if elapsedSeconds < secondsPerHour {
		minimum := RoundUpToHalf(pricePerHour / 2)
		if rounded < minimum {
			return minimum
		}
	}

	return rounded
}
