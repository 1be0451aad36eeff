package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: "b4", Code: "BK000004", Price: 750, Status: domain.BookingStatusPending},
		{ID: "b3", Code: "BK000003", Price: 375, Status: domain.BookingStatusVerified},
		{ID: "b2", Code: "BK000002", Price: 750, Status: domain.BookingStatusPending},
		{ID: "b1", Code: "BK000001", Price: 750, Status: domain.BookingStatusVerified},
		{ID: "b0", Code: "BK000000", Price: 375, Status: domain.BookingStatusRejected},
	}
}

func TestReviewService_ListBookings_FilterPending(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewReviewService(bookingRepo, notifier, newTestLogger(t))

	bookingRepo.EXPECT().List(mock.Anything).Return(sampleBookings(), nil)

	list, err := svc.ListBookings(context.Background(), domain.StatusFilter("pending"))

	require.NoError(t, err)
	require.Len(t, list.Bookings, 2)
	assert.Equal(t, "b4", list.Bookings[0].ID)
	assert.Equal(t, "b2", list.Bookings[1].ID)

	// статистика по полному списку, не по отфильтрованному
	assert.Equal(t, 5, list.Stats.Total)
	assert.Equal(t, 2, list.Stats.Pending)
	assert.Equal(t, 2, list.Stats.Verified)
	assert.Equal(t, 1, list.Stats.Rejected)
	assert.Equal(t, 1125, list.Stats.Revenue)
}

func TestReviewService_ListBookings_All(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewReviewService(bookingRepo, mocks.NewMockBookingNotifier(t), newTestLogger(t))

	bookingRepo.EXPECT().List(mock.Anything).Return(sampleBookings(), nil)

	list, err := svc.ListBookings(context.Background(), domain.FilterAll)

	require.NoError(t, err)
	assert.Len(t, list.Bookings, 5)
}

func TestReviewService_ListBookings_UnknownFilter(t *testing.T) {
	svc := NewReviewService(mocks.NewMockBookingRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	_, err := svc.ListBookings(context.Background(), domain.StatusFilter("archived"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_ListBookings_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewReviewService(bookingRepo, mocks.NewMockBookingNotifier(t), newTestLogger(t))

	bookingRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.ListBookings(context.Background(), domain.FilterAll)

	require.Error(t, err)
}

func TestReviewService_Review_VerifiedSetsConfirmedAt(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewReviewService(bookingRepo, notifier, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }

	reviewed := &domain.Booking{ID: "b1", Code: "BK000001", Status: domain.BookingStatusVerified, ConfirmedAt: &fixedNow}
	bookingRepo.EXPECT().
		Review(mock.Anything, "b1", domain.BookingStatusVerified, mock.MatchedBy(func(at *time.Time) bool {
			return at != nil && at.Equal(fixedNow)
		})).
		Return(reviewed, nil)

	sent := make(chan struct{})
	notifier.EXPECT().NotifyBookingVerified(mock.Anything, reviewed).
		Run(func(ctx context.Context, b *domain.Booking) { close(sent) }).
		Return()

	b, err := svc.Review(context.Background(), "b1", domain.BookingStatusVerified)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusVerified, b.Status)
	waitFor(t, sent)
}

func TestReviewService_Review_RejectedClearsConfirmedAt(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewReviewService(bookingRepo, notifier, newTestLogger(t))

	reviewed := &domain.Booking{ID: "b2", Status: domain.BookingStatusRejected}
	bookingRepo.EXPECT().
		Review(mock.Anything, "b2", domain.BookingStatusRejected, mock.MatchedBy(func(at *time.Time) bool {
			return at == nil
		})).
		Return(reviewed, nil)

	sent := make(chan struct{})
	notifier.EXPECT().NotifyBookingRejected(mock.Anything, reviewed).
		Run(func(ctx context.Context, b *domain.Booking) { close(sent) }).
		Return()

	b, err := svc.Review(context.Background(), "b2", domain.BookingStatusRejected)

	require.NoError(t, err)
	assert.Nil(t, b.ConfirmedAt)
	waitFor(t, sent)
}

func TestReviewService_Review_InvalidTarget(t *testing.T) {
	svc := NewReviewService(mocks.NewMockBookingRepo(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	_, err := svc.Review(context.Background(), "b1", domain.BookingStatusPending)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Review_AlreadyResolved(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewReviewService(bookingRepo, mocks.NewMockBookingNotifier(t), newTestLogger(t))

	bookingRepo.EXPECT().Review(mock.Anything, "b1", domain.BookingStatusRejected, mock.Anything).
		Return(nil, domain.ErrBookingNotPending)

	_, err := svc.Review(context.Background(), "b1", domain.BookingStatusRejected)

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}
