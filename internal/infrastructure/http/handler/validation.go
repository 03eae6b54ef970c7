package handler

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/mrops-br/products-catalog-api/internal/infrastructure/http/response"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *v10.Validate {
	v := v10.New(v10.WithRequiredStructEnabled())

	// decimal.Decimal is validated as its float64 value so numeric rules like gte apply
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateRequest returns the invalid fields of v, or nil when it is valid
func validateRequest(v interface{}) []response.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve v10.ValidationErrors
	if !errors.As(err, &ve) {
		return []response.FieldError{{Field: "", Rule: err.Error()}}
	}

	fields := make([]response.FieldError, 0, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields = append(fields, response.FieldError{Field: fe.Field(), Rule: rule})
	}
	return fields
}
