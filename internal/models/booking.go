package models

import "time"

type Booking struct {
	ID string `json:"id"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Status string `json:"status"`

	// Minor currency units (cents).
	TotalPrice int64 `json:"total_price"`

	Customer *Customer `json:"customer,omitempty"`

	BookingServices []BookingService `json:"booking_services"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingService is one service line of a booking: which service,
// performed by which staff member, at what price (cents).
type BookingService struct {
	Service *Service `json:"service,omitempty"`
	Staff   *Staff   `json:"staff,omitempty"`
	Price   int64    `json:"price"`
}
