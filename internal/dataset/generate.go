package dataset

import (
	"math"
	"math/rand"
	"time"
)

// Timestamps are drawn uniformly from this window, at second resolution.
var (
	RangeStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	RangeEnd   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

var (
	discountChoices = []float64{0, 0, 0, 0.05, 0.1, 0.15, 0.2, 0.25}
	taxRateChoices  = []float64{0.0, 0.05, 0.06, 0.07, 0.075, 0.08, 0.0825, 0.1}

	statusWeights = []float64{0.60, 0.10, 0.12, 0.08, 0.06, 0.04}
	// Index 0 means "no rating"; indexes 1..5 are the star values.
	ratingWeights = []float64{0.3, 0.03, 0.07, 0.15, 0.25, 0.20}
)

// Generate returns n synthetic transactions. The same seed always yields the
// same rows, so a regenerated dataset diffs clean under LFS.
func Generate(n int, seed int64) []Transaction {
	rng := rand.New(rand.NewSource(seed))
	window := int64(RangeEnd.Sub(RangeStart) / time.Second)

	txs := make([]Transaction, n)
	for i := range txs {
		unitPrice := round2(rng.ExpFloat64()*50 + 0.99)
		quantity := 1 + rng.Intn(20)
		discount := discountChoices[rng.Intn(len(discountChoices))]
		subtotal := round2(unitPrice * float64(quantity) * (1 - discount))
		taxRate := taxRateChoices[rng.Intn(len(taxRateChoices))]
		tax := round2(subtotal * taxRate)

		var rating *int
		if r := weightedIndex(rng, ratingWeights); r > 0 {
			rating = &r
		}

		txs[i] = Transaction{
			TransactionID: int64(i + 1),
			Timestamp:     RangeStart.Add(time.Duration(rng.Int63n(window)) * time.Second),
			CustomerID:    10000 + rng.Int63n(89999),
			Category:      Categories[rng.Intn(len(Categories))],
			ProductID:     100000 + rng.Int63n(899999),
			UnitPrice:     unitPrice,
			Quantity:      quantity,
			Discount:      discount,
			Subtotal:      subtotal,
			TaxRate:       taxRate,
			Tax:           tax,
			Total:         round2(subtotal + tax),
			PaymentMethod: PaymentMethods[rng.Intn(len(PaymentMethods))],
			Region:        Regions[rng.Intn(len(Regions))],
			City:          Cities[rng.Intn(len(Cities))],
			Status:        Statuses[weightedIndex(rng, statusWeights)],
			IsMember:      rng.Float64() < 0.35,
			Rating:        rating,
		}
	}
	return txs
}

// weightedIndex picks an index with probability proportional to weights[i].
func weightedIndex(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
