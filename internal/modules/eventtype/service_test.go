package eventtype

import (
	"context"
	"testing"

	"eventpro/internal/database"
	"eventpro/internal/domain"
	"eventpro/internal/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Service, *repository.EventRepository) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.AutoMigrate(db))
	return NewService(repository.NewEventTypeRepository(db)), repository.NewEventRepository(db)
}

func TestPublic_SortedByName(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Wedding", TypeCode: "WED", Description: "Tiệc cưới"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Name: "Birthday", TypeCode: "BDAY"})
	require.NoError(t, err)

	got, err := svc.Public(ctx)
	require.NoError(t, err)

	want := []PublicEventType{
		{Name: "Birthday", TypeCode: "BDAY"},
		{Name: "Wedding", TypeCode: "WED", Description: "Tiệc cưới"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Public() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_DuplicateCode(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Wedding", TypeCode: "WED"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Name: "Wedding 2", TypeCode: "WED"})
	assert.ErrorIs(t, err, ErrCodeTaken)
}

func TestUpdate_Patch(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	et, err := svc.Create(ctx, CreateRequest{Name: "Wedding", TypeCode: "WED"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, et.ID, UpdateRequest{Description: "Full service"})
	require.NoError(t, err)
	assert.Equal(t, "Wedding", got.Name)
	assert.Equal(t, "Full service", got.Description)

	_, err = svc.Update(ctx, 404, UpdateRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrEventTypeNotFound)
}

func TestDelete_Referenced(t *testing.T) {
	svc, events := setup(t)
	ctx := context.Background()

	et, err := svc.Create(ctx, CreateRequest{Name: "Wedding", TypeCode: "WED"})
	require.NoError(t, err)
	require.NoError(t, events.Create(ctx, &domain.Event{Name: "Gala", EventTypeID: et.ID, Status: domain.EventPending}))

	assert.ErrorIs(t, svc.Delete(ctx, et.ID), ErrEventTypeInUse)
}

func TestList_DefaultLimit(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, CreateRequest{Name: "T", TypeCode: string(rune('A' + i))})
		require.NoError(t, err)
	}

	res, err := svc.List(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Len(t, res.EventTypes, DefaultPageSize)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, int64(12), res.TotalEventTypes)
}
