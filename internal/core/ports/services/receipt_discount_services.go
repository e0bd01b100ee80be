package services

import (
	"context"

	"github.com/SscSPs/receipt_discount_codec/internal/core/domain"
)

// ReceiptDiscountDecoderSvc turns key-value records into discount events.
type ReceiptDiscountDecoderSvc interface {
	// DecodeEvent reads the discount from record. Missing or malformed fields decode as zero.
	DecodeEvent(ctx context.Context, record domain.KeyValueRecord) (*domain.ReceiptDiscountEvent, error)
}

// ReceiptDiscountEncoderSvc turns discount events into key-value records.
type ReceiptDiscountEncoderSvc interface {
	// EncodeEvent builds a new record containing only the discount field.
	EncodeEvent(ctx context.Context, event *domain.ReceiptDiscountEvent) (domain.KeyValueRecord, error)
}

// ReceiptDiscountSvcFacade combines the receipt discount service interfaces
type ReceiptDiscountSvcFacade interface {
	ReceiptDiscountDecoderSvc
	ReceiptDiscountEncoderSvc
}
