package router

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteauth/internal/errors"
)

type sample struct {
	Email string `validate:"required,notblank"`
	Role  string `validate:"required,oneof=Administrator Editor Reader"`
}

func TestCustomValidator(t *testing.T) {
	tests := []struct {
		name   string
		input  sample
		detail string
	}{
		{name: "valid", input: sample{Email: "a@mail.com", Role: "Editor"}},
		{name: "first error wins", input: sample{}, detail: "'Email' must not be empty."},
		{name: "blank email", input: sample{Email: "   ", Role: "Editor"}, detail: "'Email' must not be empty."},
		{name: "tabs and newlines", input: sample{Email: "\t\n", Role: "Editor"}, detail: "'Email' must not be empty."},
		{name: "padded value is kept", input: sample{Email: " a@mail.com ", Role: "Reader"}},
		{name: "missing role", input: sample{Email: "a"}, detail: "'Role' must not be empty."},
		{name: "unknown role", input: sample{Email: "a", Role: "Owner"}, detail: "'Role' has a range of values which does not include 'Owner'."},
	}

	cv := NewCustomValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if tt.detail == "" {
				assert.NoError(t, err)
				return
			}
			var problem *errors.ProblemDetails
			require.True(t, stderrors.As(err, &problem))
			assert.Equal(t, http.StatusBadRequest, problem.Status)
			assert.Equal(t, tt.detail, problem.Detail)
		})
	}
}
