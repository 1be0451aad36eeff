package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/metrics"
	"github.com/4nxiouz/thaitep-exam-booking/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

var allowedEvidenceExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".heic": {},
	".pdf":  {},
}

type AdmissionService struct {
	bookingRepo   ports.BookingRepo
	roundRepo     ports.RoundRepo
	storage       ports.EvidenceStorage
	orphanRepo    ports.OrphanRepo
	notifier      ports.BookingNotifier
	logger        logger.Logger
	maxUploadSize int64
	now           func() time.Time
}

func NewAdmissionService(
	bookingRepo ports.BookingRepo,
	roundRepo ports.RoundRepo,
	storage ports.EvidenceStorage,
	orphanRepo ports.OrphanRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	maxUploadSize int64,
) *AdmissionService {
	return &AdmissionService{
		bookingRepo:   bookingRepo,
		roundRepo:     roundRepo,
		storage:       storage,
		orphanRepo:    orphanRepo,
		notifier:      notifier,
		logger:        logger,
		maxUploadSize: maxUploadSize,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Admit validates the submission, uploads its evidence and stores one booking.
// Nothing is written when the round is missing, closed or full.
func (s *AdmissionService) Admit(ctx context.Context, in domain.AdmissionInput) (*domain.Booking, error) {
	if err := s.validate(&in); err != nil {
		metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	round, err := s.roundRepo.GetByID(ctx, in.RoundID)
	if err != nil {
		metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, fmt.Errorf("check round: %w", err)
	}
	if !round.IsActive {
		metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, domain.ErrRoundClosed
	}
	if round.IsFull() {
		metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, domain.ErrRoundFull
	}

	now := s.now()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		RoundID:       round.ID,
		Category:      in.Category,
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Price:         in.Category.Price(),
		PaymentMethod: in.PaymentMethod,
		Status:        in.PaymentMethod.InitialStatus(),
		CreatedAt:     now,
	}

	var uploaded []string
	if in.RequiresIDCard() {
		key := evidenceKey(domain.DocumentIDCard, in.Email, now, in.IDCard.Filename)
		url, err := s.storage.Upload(ctx, key, in.IDCard)
		if err != nil {
			return nil, s.abortUpload(ctx, uploaded, err)
		}
		uploaded = append(uploaded, key)
		booking.IDCardURL = &url
	}

	if in.RequiresPaymentSlip() {
		key := evidenceKey(domain.DocumentPaymentSlip, in.Email, now, in.PaymentSlip.Filename)
		url, err := s.storage.Upload(ctx, key, in.PaymentSlip)
		if err != nil {
			return nil, s.abortUpload(ctx, uploaded, err)
		}
		uploaded = append(uploaded, key)
		booking.PaymentSlipURL = &url
	}

	if err = s.bookingRepo.Admit(ctx, booking); err != nil {
		s.discard(ctx, uploaded, "booking insert failed: "+err.Error())
		if isAdmissionRefusal(err) {
			metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		} else {
			metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, fmt.Errorf("admit booking: %w", err)
	}

	metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeAdmitted).Inc()
	s.logger.Info("booking admitted",
		logger.String("booking_id", booking.ID),
		logger.String("booking_code", booking.Code),
		logger.String("round_id", round.ID),
		logger.String("user_type", string(booking.Category)),
		logger.String("payment_status", string(booking.Status)),
	)

	go s.notifier.NotifyBookingReceived(context.WithoutCancel(ctx), booking, round)

	return booking, nil
}

func (s *AdmissionService) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: booking code is required", domain.ErrValidation)
	}
	return s.bookingRepo.GetByCode(ctx, code)
}

func (s *AdmissionService) validate(in *domain.AdmissionInput) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown user_type %q", domain.ErrValidation, in.Category)
	}
	if !in.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment_method %q", domain.ErrValidation, in.PaymentMethod)
	}
	if in.FullName == "" || in.Email == "" || in.Phone == "" {
		return fmt.Errorf("%w: full_name, email and phone are required", domain.ErrValidation)
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}

	if in.RequiresIDCard() {
		if in.IDCard == nil {
			return fmt.Errorf("%w: identity document is required for %s", domain.ErrValidation, in.Category.Label())
		}
		if err := s.validateEvidence(domain.DocumentIDCard, in.IDCard); err != nil {
			return err
		}
	}
	if in.RequiresPaymentSlip() {
		if in.PaymentSlip == nil {
			return fmt.Errorf("%w: payment slip is required for bank transfer", domain.ErrValidation)
		}
		if err := s.validateEvidence(domain.DocumentPaymentSlip, in.PaymentSlip); err != nil {
			return err
		}
	}

	return nil
}

func (s *AdmissionService) validateEvidence(kind domain.DocumentKind, f *domain.Upload) error {
	ext := strings.ToLower(filepath.Ext(f.Filename))
	if _, ok := allowedEvidenceExt[ext]; !ok {
		return fmt.Errorf("%w: %s must be an image or PDF", domain.ErrValidation, kind)
	}
	if f.Size <= 0 {
		return fmt.Errorf("%w: %s is empty", domain.ErrValidation, kind)
	}
	if s.maxUploadSize > 0 && f.Size > s.maxUploadSize {
		return fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrValidation, kind, s.maxUploadSize)
	}
	return nil
}

func (s *AdmissionService) abortUpload(ctx context.Context, uploaded []string, cause error) error {
	metrics.AdmissionsTotal.WithLabelValues(metrics.OutcomeUploadFailed).Inc()
	s.logger.Error("evidence upload failed",
		logger.String("error", cause.Error()),
	)
	s.discard(ctx, uploaded, "admission aborted after upload failure")
	return fmt.Errorf("%w: %w", domain.ErrEvidenceUpload, cause)
}

// discard удаляет загруженные файлы; неудалённые записываются для фоновой очистки.
func (s *AdmissionService) discard(ctx context.Context, keys []string, reason string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		err := s.storage.Delete(ctx, key)
		if err == nil {
			continue
		}

		s.logger.Warn("failed to delete evidence, recording orphan",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		if err = s.orphanRepo.Record(ctx, key, reason); err != nil {
			s.logger.Error("failed to record orphaned upload",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}
}

// evidenceKey: <kind>/<email>-<unix millis>.<ext>
func evidenceKey(kind domain.DocumentKind, email string, at time.Time, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s-%d%s", kind, email, at.UnixMilli(), ext)
}

func isAdmissionRefusal(err error) bool {
	return errors.Is(err, domain.ErrRoundFull) ||
		errors.Is(err, domain.ErrRoundClosed) ||
		errors.Is(err, domain.ErrRoundNotFound)
}
