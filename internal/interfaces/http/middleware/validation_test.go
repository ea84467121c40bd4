package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

func TestValidationErrorMessage(t *testing.T) {
	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Struct(registerForm{Email: "not-an-email", Password: "abc"})
		require.Error(t, err)

		msg := ValidationErrorMessage(err)
		assert.Contains(t, msg, "name: this field is required")
		assert.Contains(t, msg, "email: invalid email format")
		assert.Contains(t, msg, "password: must be at least 4 characters")
	})

	t.Run("falls back for non-validator errors", func(t *testing.T) {
		msg := ValidationErrorMessage(errors.New("unexpected EOF"))
		assert.Equal(t, "Invalid request body", msg)
	})
}
