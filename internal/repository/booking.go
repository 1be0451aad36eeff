package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, booking_code, exam_round_id, user_type, full_name, email, phone,
	price, payment_method, payment_status, id_card_url, payment_slip_url, created_at, confirmed_at`

const bookingWithRoundQuery = `
	SELECT b.id, b.booking_code, b.exam_round_id, b.user_type, b.full_name, b.email, b.phone,
	       b.price, b.payment_method, b.payment_status, b.id_card_url, b.payment_slip_url,
	       b.created_at, b.confirmed_at, r.exam_date, r.exam_time
	FROM bookings b
	JOIN exam_rounds r ON r.id = b.exam_round_id`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func bookingDest(b *domain.Booking) []any {
	return []any{
		&b.ID, &b.Code, &b.RoundID, &b.Category, &b.FullName, &b.Email, &b.Phone,
		&b.Price, &b.PaymentMethod, &b.Status, &b.IDCardURL, &b.PaymentSlipURL,
		&b.CreatedAt, &b.ConfirmedAt,
	}
}

func scanBookingWithRound(s rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var ref domain.RoundRef
	dest := append(bookingDest(&b), &ref.ExamDate, &ref.TimeSlot)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	b.Round = &ref
	return &b, nil
}

// Admit занимает место и вставляет бронь в одной транзакции.
// Места проверяются условием в UPDATE, поэтому параллельные заявки
// не могут превысить max_seats.
func (r *BookingRepository) Admit(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	seatQuery := `UPDATE exam_rounds
				  SET current_seats = current_seats + 1
				  WHERE id = $1 AND is_active = TRUE AND current_seats < max_seats`
	res, err := tx.ExecContext(ctx, seatQuery, b.RoundID)
	if err != nil {
		return fmt.Errorf("reserve seat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("seat rows affected: %w", err)
	}
	if affected == 0 {
		return r.seatRefusal(ctx, tx, b.RoundID)
	}

	query := `INSERT INTO bookings (id, exam_round_id, user_type, full_name, email, phone, price,
			                        payment_method, payment_status, id_card_url, payment_slip_url, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING booking_code`
	err = tx.QueryRowContext(
		ctx, query,
		b.ID, b.RoundID, b.Category, b.FullName, b.Email, b.Phone, b.Price,
		b.PaymentMethod, b.Status, b.IDCardURL, b.PaymentSlipURL, b.CreatedAt,
	).Scan(&b.Code)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrRoundNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}

	return nil
}

// seatRefusal определяет, почему место не было занято.
func (r *BookingRepository) seatRefusal(ctx context.Context, tx *sql.Tx, roundID string) error {
	var active bool
	query := `SELECT is_active FROM exam_rounds WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, roundID).Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoundNotFound
		}
		return fmt.Errorf("check round: %w", err)
	}

	if !active {
		return domain.ErrRoundClosed
	}
	return domain.ErrRoundFull
}

func (r *BookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := bookingWithRoundQuery + `
	WHERE b.booking_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBookingWithRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := bookingWithRoundQuery + `
	ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBookingWithRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Review переводит бронь из pending в итоговый статус.
// При отклонении место возвращается в раунд.
func (r *BookingRepository) Review(
	ctx context.Context,
	id string,
	status domain.BookingStatus,
	confirmedAt *time.Time,
) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET payment_status = $2, confirmed_at = $3
			  WHERE id = $1 AND payment_status = $4
			  RETURNING ` + bookingColumns

	var b domain.Booking
	err = tx.QueryRowContext(ctx, query, id, status, confirmedAt, domain.BookingStatusPending).
		Scan(bookingDest(&b)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.reviewRefusal(ctx, tx, id)
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if status == domain.BookingStatusRejected {
		releaseQuery := `UPDATE exam_rounds
						 SET current_seats = current_seats - 1
						 WHERE id = $1 AND current_seats > 0`
		if _, err = tx.ExecContext(ctx, releaseQuery, b.RoundID); err != nil {
			return nil, fmt.Errorf("release seat: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit review: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) reviewRefusal(ctx context.Context, tx *sql.Tx, id string) error {
	var status string
	query := `SELECT payment_status FROM bookings WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking: %w", err)
	}

	return domain.ErrBookingNotPending
}
