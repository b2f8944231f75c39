package services

import (
	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/pkg/payments"

	"github.com/shopspring/decimal"
)

const deliveryFeeLabel = "Delivery fee"

var hundred = decimal.NewFromInt(100)

// SnapshotLine is one cart line resolved against the live catalog.
type SnapshotLine struct {
	Product  entity.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PriceSnapshot freezes what the customer pays: per-line subtotals, the
// delivery fee after the loyalty waiver, and the line items handed to the
// payment processor.
type PriceSnapshot struct {
	Lines        []SnapshotLine      `json:"lines"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	DeliveryFee  decimal.Decimal     `json:"deliveryFee"`
	Total        decimal.Decimal     `json:"total"`
	PaymentItems []payments.LineItem `json:"-"`
}

// BuildSnapshot prices the cart. products must already be filtered to the
// ones that still exist; quantities come from the cart. A Gold tier zeroes
// the delivery fee; the fee line item is emitted only when the fee is
// positive.
func BuildSnapshot(products []entity.Product, quantities map[uint]int, fee decimal.Decimal, tier entity.Tier) *PriceSnapshot {
	snap := &PriceSnapshot{Subtotal: decimal.Zero}

	for _, p := range products {
		qty := quantities[p.ID]
		if qty <= 0 {
			continue
		}
		sub := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		snap.Subtotal = snap.Subtotal.Add(sub)
		snap.Lines = append(snap.Lines, SnapshotLine{Product: p, Quantity: qty, Subtotal: sub})
		snap.PaymentItems = append(snap.PaymentItems, payments.LineItem{
			Label:      p.Name,
			UnitAmount: MinorUnits(p.Price),
			Quantity:   int64(qty),
		})
	}

	snap.DeliveryFee = fee
	if tier == entity.TierGold {
		snap.DeliveryFee = decimal.Zero
	}
	snap.Total = snap.Subtotal.Add(snap.DeliveryFee)

	if snap.DeliveryFee.IsPositive() {
		snap.PaymentItems = append(snap.PaymentItems, payments.LineItem{
			Label:      deliveryFeeLabel,
			UnitAmount: MinorUnits(snap.DeliveryFee),
			Quantity:   1,
		})
	}
	return snap
}

// MinorUnits scales a decimal amount to the smallest currency unit.
// Policy: round half up (amounts are never negative here, so half away
// from zero is the same thing). Truncation would silently drop a cent on
// prices like 10.995.
func MinorUnits(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}
