package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const maxUpload = 1 << 20

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

type admissionDeps struct {
	bookings *mocks.MockBookingRepo
	rounds   *mocks.MockRoundRepo
	storage  *mocks.MockEvidenceStorage
	orphans  *mocks.MockOrphanRepo
	notifier *mocks.MockBookingNotifier
}

func newAdmissionService(t *testing.T) (*AdmissionService, admissionDeps) {
	d := admissionDeps{
		bookings: mocks.NewMockBookingRepo(t),
		rounds:   mocks.NewMockRoundRepo(t),
		storage:  mocks.NewMockEvidenceStorage(t),
		orphans:  mocks.NewMockOrphanRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewAdmissionService(d.bookings, d.rounds, d.storage, d.orphans, d.notifier, newTestLogger(t), maxUpload)
	svc.now = func() time.Time { return fixedNow }
	return svc, d
}

func upload(name string) *domain.Upload {
	return &domain.Upload{
		Filename:    name,
		ContentType: "image/jpeg",
		Size:        4,
		Content:     strings.NewReader("data"),
	}
}

func openRound(id string) *domain.Round {
	return &domain.Round{
		ID:           id,
		ExamDate:     time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:     domain.TimeSlotMorning,
		MaxSeats:     30,
		CurrentSeats: 5,
		IsActive:     true,
	}
}

func TestAdmissionService_Admit_InternalTransfer(t *testing.T) {
	svc, d := newAdmissionService(t)
	round := openRound("r1")

	idKey := "id-card/staff@tg.co.th-1740823200000.jpg"
	slipKey := "payment-slip/staff@tg.co.th-1740823200000.pdf"

	d.rounds.EXPECT().GetByID(mock.Anything, "r1").Return(round, nil)
	d.storage.EXPECT().Upload(mock.Anything, idKey, mock.Anything).Return("https://cdn/"+idKey, nil)
	d.storage.EXPECT().Upload(mock.Anything, slipKey, mock.Anything).Return("https://cdn/"+slipKey, nil)
	d.bookings.EXPECT().Admit(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking) { b.Code = "BK000001" }).
		Return(nil)

	sent := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything, round).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Round) { close(sent) }).
		Return()

	booking, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID:       "r1",
		Category:      domain.CategoryStaff,
		FullName:      " Somchai P ",
		Email:         "staff@tg.co.th",
		Phone:         "0812345678",
		PaymentMethod: domain.PaymentTransfer,
		IDCard:        upload("card.JPG"),
		PaymentSlip:   upload("slip.pdf"),
	})

	require.NoError(t, err)
	assert.Equal(t, "BK000001", booking.Code)
	assert.Equal(t, domain.PriceInternal, booking.Price)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Somchai P", booking.FullName)
	require.NotNil(t, booking.IDCardURL)
	require.NotNil(t, booking.PaymentSlipURL)
	assert.Equal(t, "https://cdn/"+idKey, *booking.IDCardURL)
	assert.Equal(t, "https://cdn/"+slipKey, *booking.PaymentSlipURL)
	assert.Nil(t, booking.ConfirmedAt)

	waitFor(t, sent)
}

func TestAdmissionService_Admit_GeneralWalkIn(t *testing.T) {
	svc, d := newAdmissionService(t)
	round := openRound("r1")

	d.rounds.EXPECT().GetByID(mock.Anything, "r1").Return(round, nil)
	d.bookings.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil)

	sent := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything, round).
		Run(func(ctx context.Context, b *domain.Booking, r *domain.Round) { close(sent) }).
		Return()

	booking, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID:       "r1",
		Category:      domain.CategoryGeneral,
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "0899999999",
		PaymentMethod: domain.PaymentWalkIn,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriceGeneral, booking.Price)
	assert.Equal(t, domain.BookingStatusVerified, booking.Status)
	assert.Nil(t, booking.ConfirmedAt)
	assert.Nil(t, booking.IDCardURL)
	assert.Nil(t, booking.PaymentSlipURL)

	waitFor(t, sent)
}

func TestAdmissionService_Admit_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		in   domain.AdmissionInput
	}{
		{
			name: "internal without identity document",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: domain.CategoryIntern, FullName: "A", Email: "a@b.co", Phone: "1",
				PaymentMethod: domain.PaymentWalkIn,
			},
		},
		{
			name: "transfer without slip",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
				PaymentMethod: domain.PaymentTransfer,
			},
		},
		{
			name: "unknown category",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: "vip", FullName: "A", Email: "a@b.co", Phone: "1",
				PaymentMethod: domain.PaymentWalkIn,
			},
		},
		{
			name: "unknown payment method",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
				PaymentMethod: "card",
			},
		},
		{
			name: "blank name",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: domain.CategoryGeneral, FullName: "  ", Email: "a@b.co", Phone: "1",
				PaymentMethod: domain.PaymentWalkIn,
			},
		},
		{
			name: "evidence is not an image",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
				PaymentMethod: domain.PaymentTransfer, PaymentSlip: upload("slip.exe"),
			},
		},
		{
			name: "evidence too large",
			in: domain.AdmissionInput{
				RoundID: "r1", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
				PaymentMethod: domain.PaymentTransfer,
				PaymentSlip:   &domain.Upload{Filename: "slip.png", Size: maxUpload + 1, Content: strings.NewReader("")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// моки без ожиданий: любой вызов репозитория или хранилища провалит тест
			svc, _ := newAdmissionService(t)

			_, err := svc.Admit(context.Background(), tt.in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAdmissionService_Admit_RoundFull(t *testing.T) {
	svc, d := newAdmissionService(t)

	round := openRound("r1")
	round.MaxSeats = 2
	round.CurrentSeats = 2
	d.rounds.EXPECT().GetByID(mock.Anything, "r1").Return(round, nil)

	_, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID: "r1", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
		PaymentMethod: domain.PaymentWalkIn,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoundFull)
	d.bookings.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestAdmissionService_Admit_RoundClosed(t *testing.T) {
	svc, d := newAdmissionService(t)

	round := openRound("r1")
	round.IsActive = false
	d.rounds.EXPECT().GetByID(mock.Anything, "r1").Return(round, nil)

	_, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID: "r1", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
		PaymentMethod: domain.PaymentWalkIn,
	})

	assert.ErrorIs(t, err, domain.ErrRoundClosed)
}

func TestAdmissionService_Admit_RoundNotFound(t *testing.T) {
	svc, d := newAdmissionService(t)

	d.rounds.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoundNotFound)

	_, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID: "missing", Category: domain.CategoryGeneral, FullName: "A", Email: "a@b.co", Phone: "1",
		PaymentMethod: domain.PaymentWalkIn,
	})

	assert.ErrorIs(t, err, domain.ErrRoundNotFound)
}

func TestAdmissionService_Admit_UploadFailureCleansUp(t *testing.T) {
	svc, d := newAdmissionService(t)

	idKey := "id-card/w@wingspan.com-1740823200000.png"
	slipKey := "payment-slip/w@wingspan.com-1740823200000.png"

	d.rounds.EXPECT().GetByID(mock.Anything, "r1").Return(openRound("r1"), nil)
	d.storage.EXPECT().Upload(mock.Anything, idKey, mock.Anything).Return("https://cdn/"+idKey, nil)
	d.storage.EXPECT().Upload(mock.Anything, slipKey, mock.Anything).Return("", errors.New("timeout"))
	d.storage.EXPECT().Delete(mock.Anything, idKey).Return(nil)

	_, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID: "r1", Category: domain.CategoryOutsourced, FullName: "W", Email: "w@wingspan.com", Phone: "1",
		PaymentMethod: domain.PaymentTransfer,
		IDCard:        upload("id.png"),
		PaymentSlip:   upload("slip.png"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEvidenceUpload)
	d.bookings.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestAdmissionService_Admit_InsertFailureRecordsOrphan(t *testing.T) {
	svc, d := newAdmissionService(t)

	slipKey := "payment-slip/g@example.com-1740823200000.jpg"

	d.rounds.EXPECT().GetByID(mock.Anything, "r1").Return(openRound("r1"), nil)
	d.storage.EXPECT().Upload(mock.Anything, slipKey, mock.Anything).Return("https://cdn/"+slipKey, nil)
	d.bookings.EXPECT().Admit(mock.Anything, mock.Anything).Return(domain.ErrRoundFull)
	d.storage.EXPECT().Delete(mock.Anything, slipKey).Return(errors.New("storage down"))
	d.orphans.EXPECT().Record(mock.Anything, slipKey, mock.Anything).Return(nil)

	_, err := svc.Admit(context.Background(), domain.AdmissionInput{
		RoundID: "r1", Category: domain.CategoryGeneral, FullName: "G", Email: "g@example.com", Phone: "1",
		PaymentMethod: domain.PaymentTransfer,
		PaymentSlip:   upload("slip.jpg"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoundFull)
}

func TestAdmissionService_GetByCode_Normalizes(t *testing.T) {
	svc, d := newAdmissionService(t)

	d.bookings.EXPECT().GetByCode(mock.Anything, "BK000007").Return(&domain.Booking{Code: "BK000007"}, nil)

	b, err := svc.GetByCode(context.Background(), "  bk000007 ")

	require.NoError(t, err)
	assert.Equal(t, "BK000007", b.Code)
}

func TestAdmissionService_GetByCode_Empty(t *testing.T) {
	svc, _ := newAdmissionService(t)

	_, err := svc.GetByCode(context.Background(), " ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
