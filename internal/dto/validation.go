package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every calendar date in requests.
const DateLayout = time.DateOnly

var docTypePattern = regexp.MustCompile(`^[a-z][a-z_]{1,49}$`)

// RegisterValidators installs the custom binding rules on gin's validator:
// decimal_gte0 for non-negative amounts and doc_type for document type keys.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
	if err := v.RegisterValidation("decimal_gte0", decimalGTE0); err != nil {
		return err
	}
	return v.RegisterValidation("doc_type", func(fl validator.FieldLevel) bool {
		return docTypePattern.MatchString(fl.Field().String())
	})
}

// decimalValue exposes decimals to the validator as their string form.
func decimalValue(field reflect.Value) interface{} {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		return d.String()
	case decimal.NullDecimal:
		if d.Valid {
			return d.Decimal.String()
		}
	}
	return nil
}

func decimalGTE0(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

// ParseDate parses an optional date parameter.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}
