package reports

import (
	"sort"
	"time"

	domain "github.com/elvinmirzazada/salona-dashboard/internal/domain/booking"
	"github.com/elvinmirzazada/salona-dashboard/internal/models"
	"github.com/elvinmirzazada/salona-dashboard/internal/timezone"
)

// Sentinel staff bucket for service lines with no assigned staff.
const UnassignedStaff = "unassigned"

func cents(v int64) float64 {
	return float64(v) / 100
}

// Aggregate computes the dashboard report for one window. Revenue accrues
// only from completed bookings; day buckets use the booking's local
// calendar day in the company zone.
//
// Two behaviors are kept exactly as the dashboards already assume them:
// bookings_by_staff counts are set to 1 per encountered line, not
// incremented, and "scheduled" has no slot in status_breakdown so such
// bookings increment nothing there.
func Aggregate(current, previous []models.Booking, windowStart, windowEnd time.Time, period, zone string) models.ReportData {
	loc := timezone.Location(zone)

	report := models.ReportData{
		Period:            period,
		StartDate:         windowStart.In(loc).Format("2006-01-02"),
		EndDate:           windowEnd.In(loc).AddDate(0, 0, -1).Format("2006-01-02"),
		BookingsByDay:     map[string]int{},
		RevenueByDay:      map[string]float64{},
		BookingsByStaff:   map[string]*models.StaffStats{},
		BookingsByService: map[string]*models.ServiceStats{},
		StatusBreakdown: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusConfirmed): 0,
			string(domain.StatusCompleted): 0,
			string(domain.StatusCancelled): 0,
			string(domain.StatusNoShow):    0,
		},
	}

	for i := range current {
		b := &current[i]
		report.TotalBookings++

		completed := b.Status == string(domain.StatusCompleted)
		switch b.Status {
		case string(domain.StatusCompleted):
			report.CompletedBookings++
		case string(domain.StatusCancelled):
			report.CancelledBookings++
		default:
			report.PendingBookings++
		}

		if _, ok := report.StatusBreakdown[b.Status]; ok {
			report.StatusBreakdown[b.Status]++
		}

		if completed {
			report.TotalRevenue += cents(b.TotalPrice)
		}

		day := b.StartAt.In(loc).Format("Mon")
		report.BookingsByDay[day]++
		if completed {
			report.RevenueByDay[day] += cents(b.TotalPrice)
		}

		for _, line := range b.BookingServices {
			staffID := UnassignedStaff
			staffName := "Unassigned"
			if line.Staff != nil && line.Staff.ID != "" {
				staffID = line.Staff.ID
				staffName = line.Staff.FullName()
			}

			stats, ok := report.BookingsByStaff[staffID]
			if !ok {
				stats = &models.StaffStats{Name: staffName}
				report.BookingsByStaff[staffID] = stats
			}
			stats.Count = 1
			if completed {
				stats.Revenue += cents(line.Price)
			}

			serviceName := "Unknown Service"
			if line.Service != nil && line.Service.Name != "" {
				serviceName = line.Service.Name
			}
			svc, ok := report.BookingsByService[serviceName]
			if !ok {
				svc = &models.ServiceStats{}
				report.BookingsByService[serviceName] = svc
			}
			svc.Count++
			if completed {
				svc.Revenue += cents(line.Price)
			}
		}
	}

	if report.CompletedBookings > 0 {
		report.AverageBookingValue = report.TotalRevenue / float64(report.CompletedBookings)
	}
	if report.TotalBookings > 0 {
		report.CompletionRate = float64(report.CompletedBookings) / float64(report.TotalBookings) * 100
	}

	report.Comparison = compare(current, previous)
	report.StaffPerformance = staffPerformance(report.BookingsByStaff)

	return report
}

// compare computes period-over-period percentage deltas. A zero previous
// value yields a zero delta, which makes 0 -> N read as no change; the
// division-by-zero guard wins over that edge case.
func compare(current, previous []models.Booking) models.Comparison {
	var cmp models.Comparison

	prevCount := len(previous)
	if prevCount > 0 {
		cmp.BookingsChange = float64(len(current)-prevCount) / float64(prevCount) * 100
	}

	var curRevenue, prevRevenue float64
	for i := range current {
		if current[i].Status == string(domain.StatusCompleted) {
			curRevenue += cents(current[i].TotalPrice)
		}
	}
	for i := range previous {
		if previous[i].Status == string(domain.StatusCompleted) {
			prevRevenue += cents(previous[i].TotalPrice)
		}
	}
	if prevRevenue > 0 {
		cmp.RevenueChange = (curRevenue - prevRevenue) / prevRevenue * 100
	}

	return cmp
}

func staffPerformance(byStaff map[string]*models.StaffStats) []models.StaffPerformance {
	out := make([]models.StaffPerformance, 0, len(byStaff))
	for id, stats := range byStaff {
		avg := 0.0
		if stats.Count > 0 {
			avg = stats.Revenue / float64(stats.Count)
		}
		out = append(out, models.StaffPerformance{
			StaffID:           id,
			Name:              stats.Name,
			Count:             stats.Count,
			Revenue:           stats.Revenue,
			AveragePerBooking: avg,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].StaffID < out[j].StaffID
	})

	return out
}
