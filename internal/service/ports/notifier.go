package ports

import (
	"context"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingReceived(ctx context.Context, booking *domain.Booking, round *domain.Round)
	NotifyBookingVerified(ctx context.Context, booking *domain.Booking)
	NotifyBookingRejected(ctx context.Context, booking *domain.Booking)
}
