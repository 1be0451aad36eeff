package service

import (
	"context"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/metrics"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReviewService struct {
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewReviewService(
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ListBookings загружает все брони (новые первыми); фильтр применяется в памяти,
// статистика всегда считается по полному списку.
func (s *ReviewService) ListBookings(ctx context.Context, filter domain.StatusFilter) (*domain.BookingList, error) {
	if filter != "" && !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown status filter %q", domain.ErrValidation, filter)
	}

	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return &domain.BookingList{
		Bookings: domain.FilterByStatus(all, filter),
		Stats:    domain.ComputeStats(all),
	}, nil
}

// Review resolves a pending booking. Only verified and rejected are accepted targets.
func (s *ReviewService) Review(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error) {
	if !target.ReviewOutcome() {
		return nil, fmt.Errorf("%w: status must be verified or rejected", domain.ErrValidation)
	}

	var confirmedAt *time.Time
	if target == domain.BookingStatusVerified {
		t := s.now()
		confirmedAt = &t
	}

	booking, err := s.bookingRepo.Review(ctx, id, target, confirmedAt)
	if err != nil {
		return nil, fmt.Errorf("review booking: %w", err)
	}

	metrics.ReviewsTotal.WithLabelValues(string(target)).Inc()
	s.logger.Info("booking reviewed",
		logger.String("booking_id", booking.ID),
		logger.String("booking_code", booking.Code),
		logger.String("payment_status", string(booking.Status)),
	)

	if target == domain.BookingStatusVerified {
		go s.notifier.NotifyBookingVerified(context.WithoutCancel(ctx), booking)
	} else {
		go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}
