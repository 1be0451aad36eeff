package domain

import (
	"io"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusVerified BookingStatus = "verified"
	BookingStatusRejected BookingStatus = "rejected"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusVerified, BookingStatusRejected:
		return true
	}
	return false
}

// ReviewOutcome reports whether an operator may move a booking into s.
func (s BookingStatus) ReviewOutcome() bool {
	return s == BookingStatusVerified || s == BookingStatusRejected
}

type Category string

const (
	CategoryStaff      Category = "tg"
	CategoryOutsourced Category = "wingspan"
	CategoryIntern     Category = "intern"
	CategoryGeneral    Category = "general"
)

const (
	PriceInternal = 375
	PriceGeneral  = 750
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStaff, CategoryOutsourced, CategoryIntern, CategoryGeneral:
		return true
	}
	return false
}

func (c Category) IsInternal() bool {
	return c == CategoryStaff || c == CategoryOutsourced || c == CategoryIntern
}

// Price is defined for every category: internal tiers get the discounted fee.
func (c Category) Price() int {
	if c.IsInternal() {
		return PriceInternal
	}
	return PriceGeneral
}

func (c Category) Label() string {
	switch c {
	case CategoryStaff:
		return "TG staff"
	case CategoryOutsourced:
		return "Wingspan"
	case CategoryIntern:
		return "Intern"
	case CategoryGeneral:
		return "General public"
	}
	return string(c)
}

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentWalkIn   PaymentMethod = "walkin"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentTransfer || m == PaymentWalkIn
}

// InitialStatus: оплата на месте не проходит проверку слипа.
func (m PaymentMethod) InitialStatus() BookingStatus {
	if m == PaymentWalkIn {
		return BookingStatusVerified
	}
	return BookingStatusPending
}

type Booking struct {
	ID             string        `json:"id"`
	Code           string        `json:"booking_code"`
	RoundID        string        `json:"exam_round_id"`
	Category       Category      `json:"user_type"`
	FullName       string        `json:"full_name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Price          int           `json:"price"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	Status         BookingStatus `json:"payment_status"`
	IDCardURL      *string       `json:"id_card_url"`
	PaymentSlipURL *string       `json:"payment_slip_url"`
	CreatedAt      time.Time     `json:"created_at"`
	ConfirmedAt    *time.Time    `json:"confirmed_at"`

	// Round is filled by listing queries that join exam_rounds.
	Round *RoundRef `json:"exam_round,omitempty"`
}

type RoundRef struct {
	ExamDate time.Time `json:"exam_date"`
	TimeSlot TimeSlot  `json:"exam_time"`
}

type DocumentKind string

const (
	DocumentIDCard      DocumentKind = "id-card"
	DocumentPaymentSlip DocumentKind = "payment-slip"
)

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type AdmissionInput struct {
	RoundID       string
	Category      Category
	FullName      string
	Email         string
	Phone         string
	PaymentMethod PaymentMethod
	IDCard        *Upload
	PaymentSlip   *Upload
}

// RequiresIDCard and RequiresPaymentSlip describe which evidence must be attached.
func (in AdmissionInput) RequiresIDCard() bool {
	return in.Category.IsInternal()
}

func (in AdmissionInput) RequiresPaymentSlip() bool {
	return in.PaymentMethod == PaymentTransfer
}
