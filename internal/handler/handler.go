package handler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/4nxiouz/thaitep-exam-booking/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const IdempotencyHeader = "Idempotency-Key"

type CatalogSvc interface {
	ListActiveRounds(ctx context.Context) ([]*domain.Round, error)
	ListRounds(ctx context.Context) ([]*domain.Round, error)
	CreateRound(ctx context.Context, input domain.CreateRoundInput) (*domain.Round, error)
	SetRoundActive(ctx context.Context, id string, active bool) (*domain.Round, error)
}

type AdmissionSvc interface {
	Admit(ctx context.Context, in domain.AdmissionInput) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
}

type ReviewSvc interface {
	ListBookings(ctx context.Context, filter domain.StatusFilter) (*domain.BookingList, error)
	Review(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error)
}

// IdempotencyStore maps an Idempotency-Key header to the booking it produced.
type IdempotencyStore interface {
	Claim(ctx context.Context, key, fingerprint string) (string, bool, error)
	Complete(ctx context.Context, key, fingerprint, code string) error
	Release(ctx context.Context, key string) error
}

type Handler struct {
	catalogService   CatalogSvc
	admissionService AdmissionSvc
	reviewService    ReviewSvc
	idempotency      IdempotencyStore
	logger           logger.Logger
}

// NewHandler builds the HTTP handler. idem may be nil, then Idempotency-Key is ignored.
func NewHandler(
	catalogService CatalogSvc,
	admissionService AdmissionSvc,
	reviewService ReviewSvc,
	idem IdempotencyStore,
	logger logger.Logger,
) *Handler {
	return &Handler{
		catalogService:   catalogService,
		admissionService: admissionService,
		reviewService:    reviewService,
		idempotency:      idem,
		logger:           logger,
	}
}

// Applicant view

func (h *Handler) ListActiveRounds(c *ginext.Context) {
	rounds, err := h.catalogService.ListActiveRounds(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoundResponses(rounds))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	roundID := c.Param("id")
	if _, err := uuid.Parse(roundID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid round id"})
		return
	}

	var form dto.AdmissionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	idCard, closeIDCard, err := openUpload(c, "id_card")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id_card file"})
		return
	}
	defer closeIDCard()

	slip, closeSlip, err := openUpload(c, "payment_slip")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment_slip file"})
		return
	}
	defer closeSlip()

	ctx := c.Request.Context()

	fingerprint := submissionFingerprint(roundID, form)
	key, replay, err := h.claimSubmission(ctx, c.GetHeader(IdempotencyHeader), fingerprint)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if replay != nil {
		c.JSON(http.StatusOK, dto.ToBookingResponse(replay))
		return
	}

	booking, err := h.admissionService.Admit(ctx, domain.AdmissionInput{
		RoundID:       roundID,
		Category:      domain.Category(form.UserType),
		FullName:      form.FullName,
		Email:         form.Email,
		Phone:         form.Phone,
		PaymentMethod: domain.PaymentMethod(form.PaymentMethod),
		IDCard:        idCard,
		PaymentSlip:   slip,
	})
	if err != nil {
		h.releaseSubmission(ctx, key)
		h.handleError(c, err)
		return
	}

	h.completeSubmission(ctx, key, fingerprint, booking.Code)

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBookingByCode(c *ginext.Context) {
	booking, err := h.admissionService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingStatusResponse(booking))
}

// Operator view

func (h *Handler) ListRounds(c *ginext.Context) {
	rounds, err := h.catalogService.ListRounds(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoundResponses(rounds))
}

func (h *Handler) CreateRound(c *ginext.Context) {
	var req dto.CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	examDate, err := time.Parse(time.DateOnly, req.ExamDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid exam_date format, expected YYYY-MM-DD",
		})
		return
	}

	round, err := h.catalogService.CreateRound(c.Request.Context(), domain.CreateRoundInput{
		ExamDate: examDate,
		TimeSlot: domain.TimeSlot(req.ExamTime),
		MaxSeats: req.MaxSeats,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoundResponse(round))
}

func (h *Handler) SetRoundActive(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid round id"})
		return
	}

	var req dto.SetRoundActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	round, err := h.catalogService.SetRoundActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoundResponse(round))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.StatusFilter(c.DefaultQuery("status", string(domain.FilterAll)))

	list, err := h.reviewService.ListBookings(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingListResponse(list))
}

func (h *Handler) ReviewBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reviewService.Review(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// claimSubmission returns the key to complete later, or the booking of an
// already finished submission with the same key and the same fingerprint.
func (h *Handler) claimSubmission(ctx context.Context, key, fingerprint string) (string, *domain.Booking, error) {
	key = strings.TrimSpace(key)
	if key == "" || h.idempotency == nil {
		return "", nil, nil
	}

	code, claimed, err := h.idempotency.Claim(ctx, key, fingerprint)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRequest) || errors.Is(err, domain.ErrIdempotencyKeyReused) {
			return "", nil, err
		}
		// без redis заявка всё равно принимается
		h.logger.Warn("idempotency store unavailable",
			logger.String("error", err.Error()),
		)
		return "", nil, nil
	}
	if claimed {
		return key, nil, nil
	}

	booking, err := h.admissionService.GetByCode(ctx, code)
	if err != nil {
		return "", nil, err
	}
	return "", booking, nil
}

func (h *Handler) completeSubmission(ctx context.Context, key, fingerprint, code string) {
	if key == "" {
		return
	}
	if err := h.idempotency.Complete(context.WithoutCancel(ctx), key, fingerprint, code); err != nil {
		h.logger.Error("failed to complete idempotency key",
			logger.String("booking_code", code),
			logger.String("error", err.Error()),
		)
	}
}

func (h *Handler) releaseSubmission(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := h.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
		h.logger.Error("failed to release idempotency key",
			logger.String("error", err.Error()),
		)
	}
}

// submissionFingerprint identifies who submitted what, so a reused key from
// another applicant is not answered with someone else's booking.
func submissionFingerprint(roundID string, form dto.AdmissionForm) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		roundID,
		strings.ToLower(strings.TrimSpace(form.Email)),
		form.UserType,
		form.PaymentMethod,
	}, "\x00")))
	return hex.EncodeToString(sum[:])
}

func openUpload(c *ginext.Context, field string) (*domain.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}

	return &domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, func() { _ = f.Close() }, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoundNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoundFull),
		errors.Is(err, domain.ErrRoundClosed),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEvidenceUpload):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domain.ErrEvidenceUpload.Error()})

	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrCatalogUnavailable.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
