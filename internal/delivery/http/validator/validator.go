// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/errors"
)

type structValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the echo.Validator used by the HTTP server. Failures are
// reported against the field's json name, the name the client actually
// sent.
func New() echo.Validator {
	validate := playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &structValidator{validate: validate}
}

// Validate runs struct-tag validation and surfaces the first failure as a
// 400-class application error.
func (v *structValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playgroundvalidator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.ErrValidationFailed.WithMessage(fieldMessage(fieldErrs[0]))
	}

	return domainerrors.ErrValidationFailed.WithMessage(err.Error())
}

func fieldMessage(fieldErr playgroundvalidator.FieldError) string {
	if fieldErr.Tag() == "required" {
		return fmt.Sprintf("%s is required", fieldErr.Field())
	}

	return fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag())
}
