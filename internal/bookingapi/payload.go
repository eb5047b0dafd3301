package bookingapi

// Wire payloads accepted by the booking service. Instants are UTC ISO-8601
// strings; conversion from local form fields happens before they get here.

type BookingPayload struct {
	StartAt    string `json:"start_at"`
	EndAt      string `json:"end_at"`
	CustomerID string `json:"customer_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Notes      string `json:"notes,omitempty"`

	Services []ServiceLinePayload `json:"booking_services"`
}

type ServiceLinePayload struct {
	ServiceID string `json:"service_id"`
	StaffID   string `json:"staff_id,omitempty"`
	Price     int64  `json:"price"`
}

type TimeOffPayload struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	UserID    string `json:"user_id"`
	Reason    string `json:"reason,omitempty"`
}
