package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/receipt_discount_codec/internal/apperrors"
	"github.com/SscSPs/receipt_discount_codec/internal/core/domain"
	portssvc "github.com/SscSPs/receipt_discount_codec/internal/core/ports/services"
	"github.com/SscSPs/receipt_discount_codec/internal/dto"
	"github.com/SscSPs/receipt_discount_codec/internal/middleware"
	"github.com/SscSPs/receipt_discount_codec/internal/utils/money"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// receiptDiscountHandler handles HTTP requests for the receipt discount codec.
type receiptDiscountHandler struct {
	receiptDiscountService portssvc.ReceiptDiscountSvcFacade
}

func newReceiptDiscountHandler(rds portssvc.ReceiptDiscountSvcFacade) *receiptDiscountHandler {
	return &receiptDiscountHandler{
		receiptDiscountService: rds,
	}
}

// RegisterReceiptDiscountRoutes registers the codec routes under rg.
func RegisterReceiptDiscountRoutes(rg *gin.RouterGroup, receiptDiscountService portssvc.ReceiptDiscountSvcFacade) {
	registerValidators()
	h := newReceiptDiscountHandler(receiptDiscountService)

	discounts := rg.Group("/receipt-discount")
	{
		discounts.POST("/decode", h.decodeReceiptDiscount)
		discounts.POST("/encode", h.encodeReceiptDiscount)
	}
}

// decodeReceiptDiscount reads the discount out of a key-value record.
// A missing or non-integer discount field decodes as 0.00.
func (h *receiptDiscountHandler) decodeReceiptDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DecodeReceiptDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DecodeReceiptDiscount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.receiptDiscountService.DecodeEvent(c.Request.Context(), req.Record)
	if err != nil {
		logger.Error("Failed to decode receipt discount", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode receipt discount"})
		return
	}

	logger.Info("Receipt discount decoded", slog.String("discount", event.Discount.String()))
	c.JSON(http.StatusOK, dto.ToReceiptDiscountEventResponse(event))
}

// encodeReceiptDiscount converts a discount amount into a key-value record.
func (h *receiptDiscountHandler) encodeReceiptDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.EncodeReceiptDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EncodeReceiptDiscount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Discount)
	if err != nil {
		logger.Warn("Invalid discount amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount amount"})
		return
	}

	record, err := h.receiptDiscountService.EncodeEvent(c.Request.Context(), domain.NewReceiptDiscountEvent(amount))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOverflow):
			logger.Warn("Receipt discount out of range", slog.String("discount", req.Discount))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error encoding receipt discount", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to encode receipt discount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode receipt discount"})
		}
		return
	}

	logger.Info("Receipt discount encoded", slog.Any("minor_units", record[money.DiscountKey]))
	c.JSON(http.StatusOK, dto.ToReceiptDiscountRecordResponse(record))
}
