package setting

import (
	"context"
	"testing"

	"eventpro/internal/database"
	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_DefaultsThenPatch(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.AutoMigrate(db))
	svc := NewService(repository.NewSettingRepository(db))
	ctx := context.Background()

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSetting().SiteName, got.SiteName)

	got, err = svc.Update(ctx, UpdateRequest{ContactPhone: "0987 654 321"})
	require.NoError(t, err)
	assert.Equal(t, "Event Management System", got.SiteName)
	assert.Equal(t, "0987 654 321", got.ContactPhone)

	got, err = svc.Update(ctx, UpdateRequest{SiteName: "EventPro"})
	require.NoError(t, err)
	assert.Equal(t, "0987 654 321", got.ContactPhone)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got.ID, stored.ID)
	assert.Equal(t, "EventPro", stored.SiteName)

	_, err = svc.Update(ctx, UpdateRequest{ContactEmail: "nope"})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
