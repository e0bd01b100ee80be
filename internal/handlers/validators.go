package handlers

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		// Keep integers in key-value records exact instead of decoding them as float64.
		binding.EnableDecoderUseNumber = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("decimal", isDecimal); err != nil {
				slog.Error("Failed to register decimal validator", slog.String("error", err.Error()))
			}
		}
	})
}

// isDecimal reports whether a string field parses as an exact decimal.
func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}
