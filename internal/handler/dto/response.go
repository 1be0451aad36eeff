package dto

import (
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
)

const dateLayout = time.DateOnly

type RoundResponse struct {
	ID             string `json:"id"`
	ExamDate       string `json:"exam_date"`
	ExamTime       string `json:"exam_time"`
	MaxSeats       int    `json:"max_seats"`
	CurrentSeats   int    `json:"current_seats"`
	AvailableSeats int    `json:"available_seats"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	BookingCode    string  `json:"booking_code"`
	ExamRoundID    string  `json:"exam_round_id"`
	ExamDate       string  `json:"exam_date,omitempty"`
	ExamTime       string  `json:"exam_time,omitempty"`
	UserType       string  `json:"user_type"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Price          int     `json:"price"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentStatus  string  `json:"payment_status"`
	IDCardURL      *string `json:"id_card_url"`
	PaymentSlipURL *string `json:"payment_slip_url"`
	CreatedAt      string  `json:"created_at"`
	ConfirmedAt    *string `json:"confirmed_at"`
}

// BookingStatusResponse is what an applicant sees when looking up a code.
type BookingStatusResponse struct {
	BookingCode   string `json:"booking_code"`
	FullName      string `json:"full_name"`
	ExamDate      string `json:"exam_date,omitempty"`
	ExamTime      string `json:"exam_time,omitempty"`
	Price         int    `json:"price"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}

type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
	Revenue  int `json:"revenue"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Stats    StatsResponse     `json:"stats"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoundResponse(r *domain.Round) RoundResponse {
	return RoundResponse{
		ID:             r.ID,
		ExamDate:       r.ExamDate.Format(dateLayout),
		ExamTime:       string(r.TimeSlot),
		MaxSeats:       r.MaxSeats,
		CurrentSeats:   r.CurrentSeats,
		AvailableSeats: r.AvailableSeats(),
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoundResponses(rounds []*domain.Round) []RoundResponse {
	resp := make([]RoundResponse, 0, len(rounds))
	for _, r := range rounds {
		resp = append(resp, ToRoundResponse(r))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID,
		BookingCode:    b.Code,
		ExamRoundID:    b.RoundID,
		UserType:       string(b.Category),
		FullName:       b.FullName,
		Email:          b.Email,
		Phone:          b.Phone,
		Price:          b.Price,
		PaymentMethod:  string(b.PaymentMethod),
		PaymentStatus:  string(b.Status),
		IDCardURL:      b.IDCardURL,
		PaymentSlipURL: b.PaymentSlipURL,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if b.ConfirmedAt != nil {
		s := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &s
	}
	if b.Round != nil {
		resp.ExamDate = b.Round.ExamDate.Format(dateLayout)
		resp.ExamTime = string(b.Round.TimeSlot)
	}
	return resp
}

func ToBookingStatusResponse(b *domain.Booking) BookingStatusResponse {
	resp := BookingStatusResponse{
		BookingCode:   b.Code,
		FullName:      b.FullName,
		Price:         b.Price,
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.Status),
	}
	if b.Round != nil {
		resp.ExamDate = b.Round.ExamDate.Format(dateLayout)
		resp.ExamTime = string(b.Round.TimeSlot)
	}
	return resp
}

func ToBookingListResponse(l *domain.BookingList) BookingListResponse {
	bookings := make([]BookingResponse, 0, len(l.Bookings))
	for _, b := range l.Bookings {
		bookings = append(bookings, ToBookingResponse(b))
	}

	return BookingListResponse{
		Bookings: bookings,
		Stats: StatsResponse{
			Total:    l.Stats.Total,
			Pending:  l.Stats.Pending,
			Verified: l.Stats.Verified,
			Rejected: l.Stats.Rejected,
			Revenue:  l.Stats.Revenue,
		},
	}
}
