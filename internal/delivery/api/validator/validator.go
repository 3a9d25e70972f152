// Package validator plugs go-playground/validator into echo's Context.Validate.
package validator

import (
	"strings"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that also understands the party, category and
// condition tags used by the request payloads.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("party", func(fl validator.FieldLevel) bool {
		return entity.Party(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		return entity.Condition(fl.Field().String()).Valid()
	})

	return &CustomValidator{validate: v}
}

// Validate reports failed fields as VALIDATION_FAILED.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	failed := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		failed = append(failed, fieldErr.Field()+" failed "+fieldErr.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(failed, "; "))
}
