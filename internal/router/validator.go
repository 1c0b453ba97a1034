package router

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"noteauth/internal/errors"
)

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates a validator using struct `validate` tags. The
// extra `notblank` tag rejects strings that are empty after trimming spaces.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface. Failures come back as a 400
// problem whose detail is the first field error.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.ValidationFailed(fieldMessage(fieldErrs[0]))
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("'%s' must not be empty.", fe.Field())
	case "oneof":
		return fmt.Sprintf("'%s' has a range of values which does not include '%v'.", fe.Field(), fe.Value())
	case "email":
		return fmt.Sprintf("'%s' is not a valid email address.", fe.Field())
	default:
		return fmt.Sprintf("'%s' is not valid.", fe.Field())
	}
}
