// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	domainerrors "userauth/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request DTOs through their `validate` struct tags.
type CustomValidator struct {
	validator *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// maxbytes bounds the encoded length, unlike max which counts runes.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}

	return &CustomValidator{validator: v}
}

// Validate returns domainerrors.ErrValidationFailed describing every failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(field.String()) <= limit
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "maxbytes":
		return fe.Field() + " must be at most " + fe.Param() + " bytes"
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
