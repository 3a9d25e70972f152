package validator

import (
	"testing"

	domainerrors "txtchange/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type confirmPayload struct {
	Party      string `validate:"required,party"`
	InterestID string `validate:"required"`
	Category   string `validate:"omitempty,category"`
	Condition  string `validate:"omitempty,condition"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid payload", func(t *testing.T) {
		err := v.Validate(&confirmPayload{Party: "buyer", InterestID: "b1s1", Category: "Education", Condition: "Very Good"})
		assert.NoError(t, err)
	})

	t.Run("reports every failed field", func(t *testing.T) {
		err := v.Validate(&confirmPayload{Party: "broker", Category: "Cooking"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "Party failed party")
		assert.Contains(t, appErr.Details(), "InterestID failed required")
		assert.Contains(t, appErr.Details(), "Category failed category")
	})
}
