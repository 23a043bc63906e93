// Package validator wires go-playground/validator into Echo.
package validator

import (
	"net/http"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/errors"
	"bistro/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator adapts validator.Validate to Echo's Validator interface.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator with application-specific rules registered.
func New() echo.Validator {
	validate := validator.New()

	// phone10 accepts any input that reduces to exactly 10 digits, so
	// "(555) 123-4567" and "5551234567" both pass.
	_ = validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(util.Digits(fl.Field().String())) == 10
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. Field-level failures are translated
// into the domain validation error so the error handler can report which
// fields were rejected and why.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields[fieldErr.Field()] = rejectionReason(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

// rejectionReason renders a validation tag as a user-facing reason.
func rejectionReason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "phone10":
		return "must contain exactly 10 digits"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
