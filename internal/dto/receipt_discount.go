package dto

import (
	"github.com/SscSPs/receipt_discount_codec/internal/core/domain"
	"github.com/SscSPs/receipt_discount_codec/internal/utils"
	"github.com/SscSPs/receipt_discount_codec/internal/utils/money"
)

// DecodeReceiptDiscountRequest carries a record received from another component.
type DecodeReceiptDiscountRequest struct {
	Record domain.KeyValueRecord `json:"record"`
}

// EncodeReceiptDiscountRequest carries a discount amount in major units.
// The amount is a decimal string so no precision is lost in JSON.
type EncodeReceiptDiscountRequest struct {
	Discount string `json:"discount" binding:"required,decimal"`
}

// ReceiptDiscountEventResponse is returned after decoding a record.
type ReceiptDiscountEventResponse struct {
	Event    string `json:"event"`
	Discount string `json:"discount"` // Always rendered with two fractional digits
}

// ReceiptDiscountRecordResponse is returned after encoding an amount.
type ReceiptDiscountRecordResponse struct {
	Event  string                `json:"event"`
	Record domain.KeyValueRecord `json:"record"`
}

// ToReceiptDiscountEventResponse converts a domain event to its response DTO
func ToReceiptDiscountEventResponse(event *domain.ReceiptDiscountEvent) ReceiptDiscountEventResponse {
	return ReceiptDiscountEventResponse{
		Event:    domain.ReceiptDiscountEventName,
		Discount: utils.FormatWithPrecision(event.Discount, money.MoneyPrecision),
	}
}

// ToReceiptDiscountRecordResponse wraps an encoded record in its response DTO
func ToReceiptDiscountRecordResponse(record domain.KeyValueRecord) ReceiptDiscountRecordResponse {
	return ReceiptDiscountRecordResponse{
		Event:  domain.ReceiptDiscountEventName,
		Record: record,
	}
}
