package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"noteauth/internal/errors"
	"noteauth/internal/model"
	"noteauth/internal/service"
)

const userNotFound = "User is not found"

// UserRoleEnum is the role as exposed over HTTP.
type UserRoleEnum string

const (
	UserRoleAdministrator UserRoleEnum = "Administrator"
	UserRoleEditor        UserRoleEnum = "Editor"
	UserRoleReader        UserRoleEnum = "Reader"
)

func toUserRoleEnum(r model.UserRole) UserRoleEnum {
	if !r.Valid() {
		return UserRoleReader
	}
	return UserRoleEnum(r.String())
}

func (r UserRoleEnum) toModel() (model.UserRole, bool) {
	return model.ParseUserRole(string(r))
}

// UnmarshalJSON accepts the role name or its numeric value. Unknown numbers
// are kept as text so validation can report them.
func (r *UserRoleEnum) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if role := model.UserRole(n); role.Valid() {
			*r = UserRoleEnum(role.String())
		} else {
			*r = UserRoleEnum(strconv.Itoa(n))
		}
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*r = UserRoleEnum(name)
	return nil
}

// UpdateUserRequest replaces a user's credentials and role.
type UpdateUserRequest struct {
	Email    string       `json:"email" validate:"required,notblank"`
	Password string       `json:"password" validate:"required,notblank"`
	Role     UserRoleEnum `json:"role" validate:"required,oneof=Administrator Editor Reader"`
}

// UserResponse is the public shape of a user. Password is only filled by the
// list endpoint.
type UserResponse struct {
	ID        uint         `json:"id"`
	Email     string       `json:"email"`
	Password  string       `json:"password,omitempty"`
	Role      UserRoleEnum `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt"`
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      toUserRoleEnum(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserHandler serves user administration endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ProblemDetails
// @Failure 403 {object} errors.ProblemDetails
// @Failure 404 {object} errors.ProblemDetails
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(userNotFound)
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return mapUserError(err)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateUser godoc
// @Summary Replace a user's email, password and role
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "User payload"
// @Success 204
// @Failure 400 {object} errors.ProblemDetails
// @Failure 401 {object} errors.ProblemDetails
// @Failure 403 {object} errors.ProblemDetails
// @Failure 404 {object} errors.ProblemDetails
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, ok, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(userNotFound)
	}
	role, ok := req.Role.toModel()
	if !ok {
		return errors.ValidationFailed("'Role' has a range of values which does not include '" + string(req.Role) + "'.")
	}

	if err := h.svc.UpdateUser(c.Request().Context(), id, req.Email, req.Password, role); err != nil {
		return mapUserError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUsers godoc
// @Summary List users
// @Description Returns every user including the stored plaintext password.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} errors.ProblemDetails
// @Failure 403 {object} errors.ProblemDetails
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		r := newUserResponse(&users[i])
		// FIXME: plaintext passwords are returned to administrators here.
		r.Password = users[i].Password
		resp = append(resp, r)
	}
	return c.JSON(http.StatusOK, resp)
}

func mapUserError(err error) error {
	if stderrors.Is(err, service.ErrUserNotFound) {
		return errors.NotFound(userNotFound)
	}
	return err
}
