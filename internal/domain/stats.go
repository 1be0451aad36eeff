package domain

// StatusFilter selects bookings by review status; FilterAll keeps everything.
type StatusFilter string

const FilterAll StatusFilter = "all"

func (f StatusFilter) Valid() bool {
	return f == FilterAll || BookingStatus(f).Valid()
}

type BookingStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
	Revenue  int `json:"revenue"`
}

type BookingList struct {
	Bookings []*Booking   `json:"bookings"`
	Stats    BookingStats `json:"stats"`
}

// FilterByStatus keeps the input order.
func FilterByStatus(bookings []*Booking, f StatusFilter) []*Booking {
	if f == FilterAll || f == "" {
		return bookings
	}

	res := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == BookingStatus(f) {
			res = append(res, b)
		}
	}
	return res
}

// ComputeStats: выручка считается только по подтверждённым бронированиям.
func ComputeStats(bookings []*Booking) BookingStats {
	stats := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case BookingStatusPending:
			stats.Pending++
		case BookingStatusVerified:
			stats.Verified++
			stats.Revenue += b.Price
		case BookingStatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
