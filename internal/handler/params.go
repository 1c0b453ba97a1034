package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"noteauth/internal/errors"
)

const invalidBodyDetail = "The request body is invalid."

// pathID parses a numeric path parameter. Negative values are well formed
// but never name a stored row, so ok is false for them.
func pathID(c echo.Context, name string) (id uint, ok bool, err error) {
	raw := c.Param(name)
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false, invalidValue(raw)
	}
	if n < 0 {
		return 0, false, nil
	}
	return uint(n), true, nil
}

func invalidValue(raw string) error {
	return errors.ValidationFailed(fmt.Sprintf("The value '%s' is not valid.", raw))
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ValidationFailed(invalidBodyDetail)
	}
	return c.Validate(req)
}
