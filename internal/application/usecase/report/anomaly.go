// Package report contains the financial analytics engine.
package report

import (
	"math"

	"github.com/finantrack/backend/internal/domain/entity"
)

// DefaultAnomalyThreshold is the default standard-deviation multiplier used
// when flagging unusual expenses.
const DefaultAnomalyThreshold = 2.0

// minAnomalySampleSize is the minimum number of expenses required before any
// outlier is reported. Below this the data is considered insufficient and the
// detector returns an empty result, never an error.
const minAnomalySampleSize = 10

// DetectUnusualExpenses flags expense transactions whose amount is a one-sided
// statistical outlier relative to the given recent history. The input must be
// the most recent expenses, most recent first; the output keeps that order,
// restricted to flagged items. The standard deviation is computed over the
// population (dividing by n, not n-1).
func DetectUnusualExpenses(expenses []*entity.Transaction, threshold float64) []*entity.Transaction {
	if len(expenses) < minAnomalySampleSize {
		return []*entity.Transaction{}
	}

	amounts := make([]float64, len(expenses))
	sum := 0.0
	for i, t := range expenses {
		amounts[i] = t.Amount.InexactFloat64()
		sum += amounts[i]
	}
	mean := sum / float64(len(amounts))

	variance := 0.0
	for _, amount := range amounts {
		deviation := amount - mean
		variance += deviation * deviation
	}
	variance /= float64(len(amounts))
	stdDev := math.Sqrt(variance)

	cutoff := mean + threshold*stdDev

	unusual := make([]*entity.Transaction, 0)
	for i, t := range expenses {
		if amounts[i] > cutoff {
			unusual = append(unusual, t)
		}
	}
	return unusual
}
