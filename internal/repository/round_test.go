package repository

import (
	"context"
	"testing"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundCols = []string{"id", "exam_date", "exam_time", "max_seats", "current_seats", "is_active", "created_at"}

func TestRoundRepository_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoundRepo(db)

	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(roundCols).
		AddRow("r1", day, "Morning", 30, 30, true, day).
		AddRow("r2", day, "Afternoon", 30, 5, true, day)
	mock.ExpectQuery(`WHERE is_active = TRUE\s+ORDER BY exam_date ASC, CASE exam_time WHEN 'Morning' THEN 0 ELSE 1 END`).
		WillReturnRows(rows)

	rounds, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, rounds, 2)
	// полный раунд остаётся в списке
	assert.True(t, rounds[0].IsFull())
	assert.Equal(t, 25, rounds[1].AvailableSeats())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoundRepository_ListActive_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoundRepo(db)

	mock.ExpectQuery(`FROM exam_rounds`).WillReturnRows(sqlmock.NewRows(roundCols))

	rounds, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rounds)
	assert.Empty(t, rounds)
}

func TestRoundRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoundRepo(db)

	round := &domain.Round{
		ID:        "r1",
		ExamDate:  time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:  domain.TimeSlotMorning,
		MaxSeats:  30,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(`INSERT INTO exam_rounds`).
		WithArgs(round.ID, round.ExamDate, round.TimeSlot, 30, 0, true, round.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), round))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoundRepository_SetActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoundRepo(db)

	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE exam_rounds\s+SET is_active = \$2`).
		WithArgs("r1", false).
		WillReturnRows(sqlmock.NewRows(roundCols).AddRow("r1", day, "Morning", 30, 3, false, day))

	round, err := repo.SetActive(context.Background(), "r1", false)

	require.NoError(t, err)
	assert.False(t, round.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
