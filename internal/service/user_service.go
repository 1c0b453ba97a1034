package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"noteauth/internal/cache"
	"noteauth/internal/model"
	"noteauth/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// ErrUserNotFound is returned when no user has the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserService exposes user administration operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, email, password string, role model.UserRole) error
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache. cache may be nil.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

// UpdateUser overwrites email, password and role and stamps UpdatedAt.
func (s *userService) UpdateUser(ctx context.Context, id uint, email, password string, role model.UserRole) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.Email = email
	user.Password = password
	user.Role = role
	user.UpdatedAt = &now

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	s.cache.Evict(ctx, s.cacheKey(id))
	return nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) load(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}
