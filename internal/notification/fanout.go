package notification

import (
	"context"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports"
)

// Fanout delivers every event to each configured channel in order.
type Fanout struct {
	channels []ports.BookingNotifier
}

func NewFanout(channels ...ports.BookingNotifier) *Fanout {
	return &Fanout{channels: channels}
}

func (f *Fanout) NotifyBookingReceived(ctx context.Context, b *domain.Booking, r *domain.Round) {
	for _, ch := range f.channels {
		ch.NotifyBookingReceived(ctx, b, r)
	}
}

func (f *Fanout) NotifyBookingVerified(ctx context.Context, b *domain.Booking) {
	for _, ch := range f.channels {
		ch.NotifyBookingVerified(ctx, b)
	}
}

func (f *Fanout) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	for _, ch := range f.channels {
		ch.NotifyBookingRejected(ctx, b)
	}
}
