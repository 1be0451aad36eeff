package domain

import "time"

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "Morning"
	TimeSlotAfternoon TimeSlot = "Afternoon"
)

func (s TimeSlot) Valid() bool {
	return s == TimeSlotMorning || s == TimeSlotAfternoon
}

type Round struct {
	ID           string    `json:"id"`
	ExamDate     time.Time `json:"exam_date"`
	TimeSlot     TimeSlot  `json:"exam_time"`
	MaxSeats     int       `json:"max_seats"`
	CurrentSeats int       `json:"current_seats"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *Round) AvailableSeats() int {
	if r.CurrentSeats >= r.MaxSeats {
		return 0
	}
	return r.MaxSeats - r.CurrentSeats
}

func (r *Round) IsFull() bool {
	return r.CurrentSeats >= r.MaxSeats
}

type CreateRoundInput struct {
	ExamDate time.Time
	TimeSlot TimeSlot
	MaxSeats int
	IsActive *bool
}
