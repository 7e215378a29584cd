package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"eventpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, repo *BookingRepository, name string) *domain.BookingRequest {
	t.Helper()
	b := &domain.BookingRequest{
		CustomerName: name,
		Email:        name + "@x.com",
		EventType:    "Wedding",
		EventDate:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.BookingPending,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	b := seedBooking(t, repo, "lan")
	assert.NotZero(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "lan", got.CustomerName)
	assert.Equal(t, domain.BookingPending, got.Status)
	assert.Nil(t, got.RejectionReason)
	assert.True(t, got.EventDate.Equal(b.EventDate))

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRepository_ListNewestFirst(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		seedBooking(t, repo, fmt.Sprintf("c%d", i))
	}

	page1, total, err := repo.List(ctx, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, page1, 5)
	assert.Equal(t, "c7", page1[0].CustomerName)
	assert.Equal(t, "c3", page1[4].CustomerName)

	page2, _, err := repo.List(ctx, 5, 5)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "c1", page2[1].CustomerName)
}

func TestBookingRepository_TransitionOnlyFromPending(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()
	b := seedBooking(t, repo, "lan")

	reason := "fully booked"
	ok, err := repo.Transition(ctx, b.ID, domain.BookingRejected, &reason)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Transition(ctx, b.ID, domain.BookingApproved, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, got.Status)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "fully booked", *got.RejectionReason)

	ok, err = repo.Transition(ctx, 9999, domain.BookingApproved, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingRepository_ConcurrentTransitionsSingleWinner(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()
	b := seedBooking(t, repo, "lan")

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var (
				ok  bool
				err error
			)
			if i%2 == 0 {
				ok, err = repo.Transition(ctx, b.ID, domain.BookingApproved, nil)
			} else {
				reason := "no"
				ok, err = repo.Transition(ctx, b.ID, domain.BookingRejected, &reason)
			}
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.NotEqual(t, domain.BookingPending, got.Status)
	assert.Equal(t, got.Status == domain.BookingRejected, got.RejectionReason != nil)
}

func TestBookingRepository_CountsAndDates(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()
	a := seedBooking(t, repo, "a")
	seedBooking(t, repo, "b")
	old := seedBooking(t, repo, "old")
	require.NoError(t, db.Exec("UPDATE bookings SET created_at = ? WHERE id = ?",
		time.Now().UTC().AddDate(-2, 0, 0), old.ID).Error)

	_, err := repo.Transition(ctx, a.ID, domain.BookingApproved, nil)
	require.NoError(t, err)

	pending, err := repo.CountByStatus(ctx, domain.BookingPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	dates, err := repo.CreatedSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, dates, 2)

	dates, err = repo.CreatedSince(ctx, time.Now().AddDate(-3, 0, 0))
	require.NoError(t, err)
	assert.Len(t, dates, 3)

	dates, err = repo.CreatedSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, dates)
}
