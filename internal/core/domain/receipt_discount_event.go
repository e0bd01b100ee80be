package domain

import "github.com/shopspring/decimal"

// ReceiptDiscountEventName identifies the receipt discount event type.
// It is forwarded as-is by the transport and never interpreted here.
const ReceiptDiscountEventName = "evo.v2.receipt.sell.receiptDiscount"

// ReceiptDiscountEvent carries the discount applied to a whole sell receipt.
type ReceiptDiscountEvent struct {
	Discount decimal.Decimal `json:"discount"` // Major units, scale 2 when decoded
}

// NewReceiptDiscountEvent creates an event for the given discount amount.
func NewReceiptDiscountEvent(discount decimal.Decimal) *ReceiptDiscountEvent {
	return &ReceiptDiscountEvent{Discount: discount}
}
