package dto

// AdmissionForm is the multipart body of a booking submission.
// Evidence files (id_card, payment_slip) are read separately.
type AdmissionForm struct {
	UserType      string `form:"user_type" binding:"required,oneof=tg wingspan intern general"`
	FullName      string `form:"full_name" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Phone         string `form:"phone" binding:"required"`
	PaymentMethod string `form:"payment_method" binding:"required,oneof=transfer walkin"`
}

type CreateRoundRequest struct {
	ExamDate string `json:"exam_date" binding:"required"`
	ExamTime string `json:"exam_time" binding:"required,oneof=Morning Afternoon"`
	MaxSeats int    `json:"max_seats" binding:"required,gt=0"`
	IsActive *bool  `json:"is_active"`
}

type SetRoundActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
}
