package transform

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"fakestoredw/internal/pkg/constants"
)

// Explicit per-field coercion rules: absent values default to zero,
// non-numeric values fail loudly.

func coerceFloat(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, coercionError("%q is not numeric", val)
		}
		return f, nil
	default:
		return 0, coercionError("cannot coerce %T to float", v)
	}
}

func coerceInt(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int64(val), nil
	case string:
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, coercionError("%q is not an integer", val)
		}
		return i, nil
	default:
		return 0, coercionError("cannot coerce %T to integer", v)
	}
}

func coerceDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero, coercionError("%q is not numeric", val)
		}
		return d, nil
	default:
		return decimal.Zero, coercionError("cannot coerce %T to decimal", v)
	}
}

func coercionError(format string, args ...interface{}) error {
	return constants.NewCodedError(constants.CodeCoercion, fmt.Sprintf(format, args...))
}
