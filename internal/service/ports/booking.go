package ports

import (
	"context"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
)

type BookingRepo interface {
	Admit(ctx context.Context, b *domain.Booking) error
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Review(ctx context.Context, id string, status domain.BookingStatus, confirmedAt *time.Time) (*domain.Booking, error)
}
