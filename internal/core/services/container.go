package services

import portssvc "github.com/SscSPs/receipt_discount_codec/internal/core/ports/services"

// NewServiceContainer wires the concrete services behind their port interfaces.
func NewServiceContainer() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ReceiptDiscount: NewReceiptDiscountService(),
	}
}
