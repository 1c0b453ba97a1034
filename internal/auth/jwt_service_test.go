package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "test-issuer"
	testAudience = "test-audience"
	testSecret   = "test-secret-that-is-long-enough"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testIssuer, testAudience, testSecret)
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(1, "Administrator")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "Administrator", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testAudience}, claims.Audience)
	assert.Equal(t, issuedAt.Add(4*time.Hour), claims.ExpiresAt.Time.UTC())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	issuer := NewJWTService(testIssuer, testAudience, testSecret)
	token, err := issuer.GenerateToken(2, "Editor")
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *JWTService
		token    string
	}{
		{name: "wrong secret", verifier: NewJWTService(testIssuer, testAudience, "another-secret"), token: token},
		{name: "wrong issuer", verifier: NewJWTService("someone-else", testAudience, testSecret), token: token},
		{name: "wrong audience", verifier: NewJWTService(testIssuer, "other-api", testSecret), token: token},
		{name: "garbage", verifier: issuer, token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.verifier.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(testIssuer, testAudience, testSecret)
	issuedAt := time.Now().Add(-5 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(3, "Reader")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTService(testIssuer, testAudience, testSecret)
	claims := &Claims{
		Role: "Administrator",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}
