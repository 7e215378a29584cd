package repository

import (
	"context"
	"testing"

	"eventpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository_Lifecycle(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))
	ctx := context.Background()

	c := &domain.ContactMessage{Name: "An", Email: "an@x.com", Message: "Hi", Status: domain.ContactPending}
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	ok, err := repo.Transition(ctx, c.ID, domain.ContactReplied)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Transition(ctx, c.ID, domain.ContactReplied)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactReplied, got.Status)
	assert.Equal(t, "Hi", got.Message)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrNotFound)
}

func TestContactRepository_List(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &domain.ContactMessage{Name: name, Email: name + "@x.com", Message: "m", Status: domain.ContactPending}))
	}

	rows, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].Name)

	n, err := repo.CountByStatus(ctx, domain.ContactPending)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
