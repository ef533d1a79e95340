package repository

import (
	"testing"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormUserRepository(gdb, quietLogger())

	user := &domain.User{
		Username:     "admin",
		Email:        "admin@productcatalog.com",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.UserID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("lookup by username", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, user.UserID, found.UserID)

		_, err = repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("existence checks", func(t *testing.T) {
		ok, err := repo.ExistsByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByEmail(ctx, "ADMIN@productcatalog.com")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByEmail(ctx, "other@productcatalog.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unique username", func(t *testing.T) {
		dup := &domain.User{Username: "admin", Email: "x@y.z", PasswordHash: "h", Role: domain.RoleUser, IsActive: true}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("last login", func(t *testing.T) {
		at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		require.NoError(t, repo.UpdateLastLogin(ctx, user.UserID, at))

		found, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, found.LastLoginAt)
		assert.True(t, at.Equal(*found.LastLoginAt))

		assert.ErrorIs(t, repo.UpdateLastLogin(ctx, 999, at), domain.ErrNotFound)
	})
}
