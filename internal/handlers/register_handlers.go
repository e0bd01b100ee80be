package handlers

import (
	portssvc "github.com/SscSPs/receipt_discount_codec/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	RegisterReceiptDiscountRoutes(v1, services.ReceiptDiscount)
}
