package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"noteauth/internal/errors"
	"noteauth/internal/service"
)

// LoginHandler handles the credential exchange endpoint.
type LoginHandler struct {
	authService service.AuthService
}

// NewLoginHandler creates a new login handler.
func NewLoginHandler(authService service.AuthService) *LoginHandler {
	return &LoginHandler{authService: authService}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags login
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ProblemDetails
// @Failure 401 {object} errors.ProblemDetails
// @Router /login [post]
func (h *LoginHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidCredentials) {
			return errors.Unauthorized()
		}
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}
