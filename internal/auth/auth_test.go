package auth

import (
	"testing"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("PlainPassword123!")
	require.NoError(t, err)
	assert.NotEqual(t, "PlainPassword123!", hash)

	ok, err := h.Verify(hash, "PlainPassword123!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("not-a-hash", "x")
	assert.Error(t, err)
}

func TestPasswordHasherFallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, DefaultCost, NewPasswordHasher(99).cost)
}

func testUser() *domain.User {
	return &domain.User{UserID: 7, Username: "admin", Email: "admin@productcatalog.com", Role: domain.RoleAdmin}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(secret, "ProductCatalogAPI", "ProductCatalogClient", 2*time.Hour)

	raw, expiresAt, err := svc.Issue(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)

	claims, err := svc.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin@productcatalog.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestTokenValidationFailures(t *testing.T) {
	svc := NewTokenService(secret, "ProductCatalogAPI", "ProductCatalogClient", time.Hour)
	good, _, err := svc.Issue(testUser())
	require.NoError(t, err)

	expired := NewTokenService(secret, "ProductCatalogAPI", "ProductCatalogClient", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	old, _, err := expired.Issue(testUser())
	require.NoError(t, err)

	otherSecret := NewTokenService("ffffffffffffffffffffffffffffffff", "ProductCatalogAPI", "ProductCatalogClient", time.Hour)
	forged, _, err := otherSecret.Issue(testUser())
	require.NoError(t, err)

	otherAudience := NewTokenService(secret, "ProductCatalogAPI", "SomeoneElse", time.Hour)
	foreign, _, err := otherAudience.Issue(testUser())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: domain.RoleAdmin}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"expired", old},
		{"wrong secret", forged},
		{"wrong audience", foreign},
		{"unsigned", none},
		{"tampered", good + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
