package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-management/internal/domain"
	"github.com/spec-kit/user-management/internal/repository"
)

func newUser(i int) *domain.User {
	return &domain.User{
		Email:        fmt.Sprintf("user%02d@example.com", i),
		PasswordHash: "hash",
		FullName:     fmt.Sprintf("User %02d", i),
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}
}

func TestMemoryRepository_CreateAssignsIdentity(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	user := newUser(0)

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser(0)))
	err := repo.Create(ctx, newUser(0))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestMemoryRepository_GetByEmailAndID(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()
	user := newUser(0)
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryRepository_UpdateReindexesEmail(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()
	first := newUser(0)
	second := newUser(1)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Taking an email already held by another user is a conflict.
	first.Email = second.Email
	assert.ErrorIs(t, repo.Update(ctx, first), repository.ErrDuplicateEmail)

	first.Email = "moved@example.com"
	require.NoError(t, repo.Update(ctx, first))

	_, err := repo.GetByEmail(ctx, "user00@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound, "old email is released")

	moved, err := repo.GetByEmail(ctx, "moved@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, moved.ID)
}

func TestMemoryRepository_UpdateUnknownUser(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ghost := newUser(0)
	ghost.ID = "missing"
	assert.ErrorIs(t, repo.Update(context.Background(), ghost), repository.ErrNotFound)
}

func TestMemoryRepository_ListStableOrder(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()

	created := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		user := newUser(i)
		require.NoError(t, repo.Create(ctx, user))
		created = append(created, user.ID)
	}

	listed, err := repo.List(ctx, 100, 0)
	require.NoError(t, err)
	require.Len(t, listed, 5)
	for i, user := range listed {
		assert.Equal(t, created[i], user.ID, "creation order preserved at index %d", i)
	}

	page, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, created[2], page[0].ID)
	assert.Equal(t, created[3], page[1].ID)

	empty, err := repo.List(ctx, 10, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
