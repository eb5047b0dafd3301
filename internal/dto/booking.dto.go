package dto

// Booking form payloads arrive with local wall-clock fields. Conversion to
// UTC instants happens in the handler, using the active company timezone.

type BookingServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	StaffID   string `json:"staff_id"`
	Price     int64  `json:"price"`
}

type BookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`

	Services []BookingServiceRequest `json:"booking_services" binding:"required"`
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TimeOffRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	UserID string `json:"user_id" binding:"required"`
	Reason string `json:"reason"`
}
