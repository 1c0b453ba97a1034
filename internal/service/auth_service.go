package service

import (
	"context"
	"errors"
	"fmt"

	"noteauth/internal/auth"
	"noteauth/internal/model"
	"noteauth/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when no user has the given email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAmbiguousCredentials is returned when more than one user matches a login.
	ErrAmbiguousCredentials = errors.New("more than one user matches the credentials")
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login finds the single user whose email and password match exactly and
// issues a token carrying its id and role.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	candidates, err := s.userRepo.FindByCredentials(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("find user by credentials: %w", err)
	}

	var matched []model.User
	for _, u := range candidates {
		if u.Email == email && u.Password == password {
			matched = append(matched, u)
		}
	}

	switch len(matched) {
	case 0:
		return "", ErrInvalidCredentials
	case 1:
	default:
		return "", ErrAmbiguousCredentials
	}

	user := matched[0]
	token, err := s.jwtService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
