package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var bookingCols = []string{
	"id", "booking_code", "exam_round_id", "user_type", "full_name", "email", "phone",
	"price", "payment_method", "payment_status", "id_card_url", "payment_slip_url",
	"created_at", "confirmed_at",
}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &dbpg.DB{Master: db}, mock
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "b1",
		RoundID:       "r1",
		Category:      domain.CategoryGeneral,
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "0899999999",
		Price:         750,
		PaymentMethod: domain.PaymentTransfer,
		Status:        domain.BookingStatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBookingRepository_Admit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE exam_rounds\s+SET current_seats = current_seats \+ 1`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"booking_code"}).AddRow("BK000042"))
	mock.ExpectCommit()

	b := pendingBooking()
	err := repo.Admit(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, "BK000042", b.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Admit_Refused(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "full",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT is_active FROM exam_rounds`).
					WithArgs("r1").
					WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
			},
			wantErr: domain.ErrRoundFull,
		},
		{
			name: "closed",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT is_active FROM exam_rounds`).
					WithArgs("r1").
					WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(false))
			},
			wantErr: domain.ErrRoundClosed,
		},
		{
			name: "missing round",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT is_active FROM exam_rounds`).
					WithArgs("r1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrRoundNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepo(db)

			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE exam_rounds\s+SET current_seats = current_seats \+ 1`).
				WithArgs("r1").
				WillReturnResult(sqlmock.NewResult(0, 0))
			tt.setup(mock)
			mock.ExpectRollback()

			err := repo.Admit(context.Background(), pendingBooking())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_Admit_ForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE exam_rounds`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.Admit(context.Background(), pendingBooking())

	assert.ErrorIs(t, err, domain.ErrRoundNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func reviewedRow(status domain.BookingStatus, confirmedAt any) *sqlmock.Rows {
	b := pendingBooking()
	return sqlmock.NewRows(bookingCols).AddRow(
		b.ID, "BK000042", b.RoundID, string(b.Category), b.FullName, b.Email, b.Phone,
		b.Price, string(b.PaymentMethod), string(status), nil, "https://cdn.example.com/payment-slip/x.png",
		b.CreatedAt, confirmedAt,
	)
}

func TestBookingRepository_Review_Verified(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE bookings\s+SET payment_status = \$2, confirmed_at = \$3`).
		WithArgs("b1", domain.BookingStatusVerified, &at, domain.BookingStatusPending).
		WillReturnRows(reviewedRow(domain.BookingStatusVerified, at))
	mock.ExpectCommit()

	b, err := repo.Review(context.Background(), "b1", domain.BookingStatusVerified, &at)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusVerified, b.Status)
	require.NotNil(t, b.ConfirmedAt)
	assert.True(t, b.ConfirmedAt.Equal(at))
	assert.Nil(t, b.IDCardURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Review_RejectedReleasesSeat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE bookings`).
		WillReturnRows(reviewedRow(domain.BookingStatusRejected, nil))
	mock.ExpectExec(`UPDATE exam_rounds\s+SET current_seats = current_seats - 1`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b, err := repo.Review(context.Background(), "b1", domain.BookingStatusRejected, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, b.Status)
	assert.Nil(t, b.ConfirmedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Review_Refused(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "already resolved",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT payment_status FROM bookings`).
					WithArgs("b1").
					WillReturnRows(sqlmock.NewRows([]string{"payment_status"}).AddRow("verified"))
			},
			wantErr: domain.ErrBookingNotPending,
		},
		{
			name: "missing booking",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT payment_status FROM bookings`).
					WithArgs("b1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewBookingRepo(db)

			mock.ExpectBegin()
			mock.ExpectQuery(`UPDATE bookings`).
				WillReturnError(sql.ErrNoRows)
			tt.setup(mock)
			mock.ExpectRollback()

			_, err := repo.Review(context.Background(), "b1", domain.BookingStatusRejected, nil)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	examDate := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(append(bookingCols, "exam_date", "exam_time")).
		AddRow("b2", "BK000002", "r1", "tg", "A", "a@tg.co.th", "1", 375, "walkin", "verified",
			"https://cdn.example.com/id-card/a.jpg", nil, created.Add(time.Hour), created, examDate, "Morning").
		AddRow("b1", "BK000001", "r1", "general", "B", "b@example.com", "2", 750, "transfer", "pending",
			nil, "https://cdn.example.com/payment-slip/b.png", created, nil, examDate, "Morning")
	mock.ExpectQuery(`FROM bookings b\s+JOIN exam_rounds r .*ORDER BY b.created_at DESC`).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BK000002", list[0].Code)
	assert.Equal(t, domain.CategoryStaff, list[0].Category)
	require.NotNil(t, list[0].Round)
	assert.Equal(t, domain.TimeSlotMorning, list[0].Round.TimeSlot)
	assert.Nil(t, list[1].IDCardURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
