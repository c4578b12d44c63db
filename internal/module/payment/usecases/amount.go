package usecases

import (
	"turf-booking-service/internal/module/payment/models/entity"

	"github.com/shopspring/decimal"
)

var (
	taxRate         = decimal.RequireFromString("0.05")
	amountTolerance = decimal.RequireFromString("0.01")
)

// ExpectedAmount is the slot total plus 5% tax, rounded to the minor unit.
func ExpectedAmount(slots []entity.Slot) decimal.Decimal {
	subtotal := decimal.Zero
	for _, s := range slots {
		subtotal = subtotal.Add(s.EffectivePrice())
	}
	return subtotal.Mul(decimal.NewFromInt(1).Add(taxRate)).Round(2)
}

func AmountMatches(expected, reported decimal.Decimal) bool {
	return expected.Sub(reported).Abs().LessThanOrEqual(amountTolerance)
}
