package models

// StaffStats accumulates bookings and revenue for one staff member.
type StaffStats struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type ServiceStats struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type StaffPerformance struct {
	StaffID           string  `json:"staff_id"`
	Name              string  `json:"name"`
	Count             int     `json:"count"`
	Revenue           float64 `json:"revenue"`
	AveragePerBooking float64 `json:"average_per_booking"`
}

type Comparison struct {
	BookingsChange float64 `json:"bookings_change"`
	RevenueChange  float64 `json:"revenue_change"`
}

// ReportData is the aggregated dashboard report for one period. Currency
// figures are in decimal major units, percentages are plain floats; any
// rounding happens at display time.
type ReportData struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	TotalBookings     int `json:"total_bookings"`
	CompletedBookings int `json:"completed_bookings"`
	CancelledBookings int `json:"cancelled_bookings"`
	PendingBookings   int `json:"pending_bookings"`

	TotalRevenue        float64 `json:"total_revenue"`
	AverageBookingValue float64 `json:"average_booking_value"`
	CompletionRate      float64 `json:"completion_rate"`

	BookingsByDay map[string]int     `json:"bookings_by_day"`
	RevenueByDay  map[string]float64 `json:"revenue_by_day"`

	BookingsByStaff   map[string]*StaffStats   `json:"bookings_by_staff"`
	BookingsByService map[string]*ServiceStats `json:"bookings_by_service"`

	StatusBreakdown map[string]int `json:"status_breakdown"`

	Comparison Comparison `json:"comparison"`

	StaffPerformance []StaffPerformance `json:"staff_performance"`
}
