package handlers

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding rules used by the request DTOs:
// decimal_gt0 for strictly positive amounts and rates, currency_code for 3-letter codes.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("decimal_gt0", decimalGreaterThanZero); err != nil {
		return fmt.Errorf("register decimal_gt0: %w", err)
	}
	if err := v.RegisterValidation("currency_code", currencyCode); err != nil {
		return fmt.Errorf("register currency_code: %w", err)
	}
	return nil
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	field := fl.Field()
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.IsPositive()
	}
	if field.Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(field.String())
	return err == nil && d.IsPositive()
}

func currencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
