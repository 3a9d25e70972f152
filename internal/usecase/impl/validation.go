package impl

import (
	"strings"

	"txtchange/internal/domain/entity"
	domainerrors "txtchange/internal/domain/errors"
	"txtchange/internal/errors"
	"txtchange/internal/util"

	"github.com/go-playground/validator/v10"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]func(string) bool{
		"isbn_digits": util.IsDigits,
		"price": func(s string) bool {
			_, ok := util.ParsePrice(s)

			return ok
		},
		"condition": func(s string) bool { return entity.Condition(s).Valid() },
		"category":  func(s string) bool { return entity.Category(s).Valid() },
	}
	for tag, rule := range rules {
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(strings.TrimSpace(fl.Field().String()))
		})
	}

	return v
}

// validateInput checks the validate tags of input and reports every failed
// field as VALIDATION_FAILED.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	failed := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		failed = append(failed, fieldErr.Field()+" failed "+fieldErr.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(failed, "; "))
}
