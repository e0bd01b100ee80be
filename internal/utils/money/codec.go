// Package money converts receipt discount amounts between exact decimals and
// the minor-unit integers carried in key-value records.
package money

import (
	"fmt"

	"github.com/SscSPs/receipt_discount_codec/internal/apperrors"
	"github.com/SscSPs/receipt_discount_codec/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// MoneyPrecision is the number of fractional digits of a decoded amount.
	MoneyPrecision = 2
	// MinorUnitsPerUnit must stay equal to 10^MoneyPrecision.
	MinorUnitsPerUnit = 100

	// DiscountKey is the record field holding the discount in minor units.
	DiscountKey = "discount"
)

var hundred = decimal.NewFromInt(MinorUnitsPerUnit)

// Decode reads the discount from record. A missing or non-integer field reads as zero.
// The result always has exactly MoneyPrecision fractional digits.
func Decode(record domain.KeyValueRecord) decimal.Decimal {
	minorUnits := record.GetInt64(DiscountKey, 0)

	q, r := decimal.NewFromInt(minorUnits).QuoRem(hundred, MoneyPrecision)
	if r.IsNegative() {
		// QuoRem truncates toward zero; step down to floor. Whole minor units
		// always divide exactly, so this only runs if the constants change.
		q = q.Sub(decimal.New(1, -MoneyPrecision))
	}
	return q
}

// Encode converts amount to minor units and returns a new record holding only
// the discount field. Sub-minor-unit digits are truncated toward zero.
func Encode(amount decimal.Decimal) (domain.KeyValueRecord, error) {
	minorUnits, err := ToMinorUnits(amount)
	if err != nil {
		return nil, err
	}
	return domain.KeyValueRecord{DiscountKey: minorUnits}, nil
}

// EncodeInto writes the discount field into an existing record and leaves every
// other field untouched. The record is not modified when encoding fails.
func EncodeInto(record domain.KeyValueRecord, amount decimal.Decimal) error {
	minorUnits, err := ToMinorUnits(amount)
	if err != nil {
		return err
	}
	record.PutInt64(DiscountKey, minorUnits)
	return nil
}

// ToMinorUnits multiplies amount by MinorUnitsPerUnit and truncates toward zero.
// It returns apperrors.ErrOverflow when the result does not fit an int64.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	// Decimal digits left of the point; NumDigits may be one short for exact powers of ten.
	intDigits := int64(amount.NumDigits()) + int64(amount.Exponent())
	switch {
	case intDigits > maxIntDigits:
		return 0, errOverflow
	case intDigits <= -MoneyPrecision-1:
		return 0, nil
	}

	scaled := amount.Mul(hundred).BigInt()
	if !scaled.IsInt64() {
		return 0, errOverflow
	}
	return scaled.Int64(), nil
}

// maxIntDigits bounds integer digits before scaling: any amount of 10^17 or
// more times MinorUnitsPerUnit already exceeds math.MaxInt64.
const maxIntDigits = 17

var errOverflow = fmt.Errorf("%w: minor units exceed int64 range", apperrors.ErrOverflow)
