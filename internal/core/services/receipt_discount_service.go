package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/receipt_discount_codec/internal/apperrors"
	"github.com/SscSPs/receipt_discount_codec/internal/core/domain"
	"github.com/SscSPs/receipt_discount_codec/internal/middleware"
	"github.com/SscSPs/receipt_discount_codec/internal/utils/money"
)

type ReceiptDiscountService struct{}

func NewReceiptDiscountService() *ReceiptDiscountService {
	return &ReceiptDiscountService{}
}

func (s *ReceiptDiscountService) DecodeEvent(ctx context.Context, record domain.KeyValueRecord) (*domain.ReceiptDiscountEvent, error) {
	if _, ok := record.Int64(money.DiscountKey); !ok {
		middleware.GetLoggerFromCtx(ctx).Debug("Discount field missing or not an integer, decoding as zero")
	}
	return domain.NewReceiptDiscountEvent(money.Decode(record)), nil
}

func (s *ReceiptDiscountService) EncodeEvent(ctx context.Context, event *domain.ReceiptDiscountEvent) (domain.KeyValueRecord, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: receipt discount event is required", apperrors.ErrValidation)
	}

	record, err := money.Encode(event.Discount)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to encode receipt discount",
			slog.Int("exponent", int(event.Discount.Exponent())),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to encode receipt discount in service: %w", err)
	}
	return record, nil
}
