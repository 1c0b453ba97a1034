package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noteauth/internal/auth"
	"noteauth/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	admin := model.User{ID: 1, Email: "berkAdmin@mail.com", Password: "berkAdmin", Role: model.RoleAdministrator}
	editor := model.User{ID: 2, Email: "berkEditor@mail.com", Password: "berkEditor", Role: model.RoleEditor}

	tests := []struct {
		name          string
		email         string
		password      string
		candidates    []model.User
		repoErr       error
		expectedError error
		expectedSub   string
		expectedRole  string
	}{
		{
			name:         "successful login",
			email:        "berkAdmin@mail.com",
			password:     "berkAdmin",
			candidates:   []model.User{admin},
			expectedSub:  "1",
			expectedRole: "Administrator",
		},
		{
			name:          "no match",
			email:         "nobody@mail.com",
			password:      "nothing",
			candidates:    []model.User{},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "collation matched a differently cased email",
			email:         "BERKADMIN@mail.com",
			password:      "berkAdmin",
			candidates:    []model.User{admin},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "more than one exact match",
			email:         "berkEditor@mail.com",
			password:      "berkEditor",
			candidates:    []model.User{editor, {ID: 9, Email: editor.Email, Password: editor.Password}},
			expectedError: ErrAmbiguousCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindByCredentials", mock.Anything, tt.email, tt.password).Return(tt.candidates, tt.repoErr)

			jwtService := auth.NewJWTService("issuer", "audience", "test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, tt.expectedSub, claims.Subject)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	dbErr := errors.New("connection lost")
	mockRepo.On("FindByCredentials", mock.Anything, "a", "b").Return(nil, dbErr)

	svc := NewAuthService(mockRepo, auth.NewJWTService("issuer", "audience", "secret"))
	_, err := svc.Login(context.Background(), "a", "b")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
