package calendar

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/bookingapi"
	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

// fakeAPI implements Service with swappable behaviors per test.
type fakeAPI struct {
	listBookings func(start, end *time.Time) ([]models.Booking, error)
	listTimeOffs func() ([]models.TimeOff, error)

	created *models.Booking
	deleted []string

	statusCalls []string
}

func (f *fakeAPI) ListBookings(_ context.Context, start, end *time.Time) ([]models.Booking, error) {
	if f.listBookings != nil {
		return f.listBookings(start, end)
	}
	return nil, nil
}

func (f *fakeAPI) ListTimeOffs(context.Context) ([]models.TimeOff, error) {
	if f.listTimeOffs != nil {
		return f.listTimeOffs()
	}
	return nil, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, p bookingapi.BookingPayload) (*models.Booking, error) {
	return f.created, nil
}

func (f *fakeAPI) UpdateBooking(_ context.Context, id string, p bookingapi.BookingPayload) (*models.Booking, error) {
	return &models.Booking{ID: id}, nil
}

func (f *fakeAPI) UpdateBookingStatus(_ context.Context, id, status string) (*models.Booking, error) {
	f.statusCalls = append(f.statusCalls, id+":"+status)
	return &models.Booking{ID: id, Status: status}, nil
}

func (f *fakeAPI) MarkNoShow(_ context.Context, id string) (*models.Booking, error) {
	f.statusCalls = append(f.statusCalls, id+":no_show")
	return &models.Booking{ID: id, Status: "no_show"}, nil
}

func (f *fakeAPI) MarkCompleted(_ context.Context, id string) (*models.Booking, error) {
	f.statusCalls = append(f.statusCalls, id+":completed")
	return &models.Booking{ID: id, Status: "completed"}, nil
}

func (f *fakeAPI) DeleteBooking(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) CreateTimeOff(_ context.Context, p bookingapi.TimeOffPayload) (*models.TimeOff, error) {
	return &models.TimeOff{ID: "to-new", UserID: p.UserID}, nil
}

func (f *fakeAPI) UpdateTimeOff(_ context.Context, id string, p bookingapi.TimeOffPayload) (*models.TimeOff, error) {
	return &models.TimeOff{ID: id}, nil
}

func (f *fakeAPI) DeleteTimeOff(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func rangeBooking(id, status string, start time.Time) models.Booking {
	return models.Booking{
		ID:      id,
		Status:  status,
		StartAt: start,
		EndAt:   start.Add(time.Hour),
		Customer: &models.Customer{
			FirstName: "Test",
			LastName:  id,
		},
	}
}

var (
	rangeStart = time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
)

func TestLoadRangeReplacesVisibleSet(t *testing.T) {
	api := &fakeAPI{
		listBookings: func(start, end *time.Time) ([]models.Booking, error) {
			return []models.Booking{rangeBooking("a", "confirmed", rangeStart.Add(9 * time.Hour))}, nil
		},
		listTimeOffs: func() ([]models.TimeOff, error) {
			return []models.TimeOff{
				{ID: "in", StartDate: rangeStart, EndDate: rangeStart.AddDate(0, 0, 1)},
				{ID: "out", StartDate: rangeEnd.AddDate(0, 0, 5), EndDate: rangeEnd.AddDate(0, 0, 6)},
			}, nil
		},
	}
	r := NewReconciler(api, zap.NewNop())

	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("expected booking plus overlapping time-off, got %d", len(events))
	}
	if events[0].ID != "booking-a" || events[1].ID != "timeoff-in" {
		t.Fatalf("got ids %s, %s", events[0].ID, events[1].ID)
	}
}

func TestLoadRangeDiscardsStaleResponse(t *testing.T) {
	releaseA := make(chan struct{})
	started := make(chan string, 2)

	api := &fakeAPI{}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		if start.Equal(rangeStart) {
			started <- "A"
			<-releaseA // A resolves only after B has finished
			return []models.Booking{rangeBooking("from-A", "confirmed", rangeStart)}, nil
		}
		started <- "B"
		return []models.Booking{rangeBooking("from-B", "confirmed", rangeEnd)}, nil
	}

	r := NewReconciler(api, zap.NewNop())

	doneA := make(chan error, 1)
	go func() {
		doneA <- r.LoadRange(context.Background(), rangeStart, rangeEnd)
	}()
	<-started

	// Navigate away while A is still in flight.
	bStart := rangeEnd
	bEnd := rangeEnd.AddDate(0, 0, 7)
	if err := r.LoadRange(context.Background(), bStart, bEnd); err != nil {
		t.Fatal(err)
	}
	<-started

	close(releaseA)
	if err := <-doneA; err != nil {
		t.Fatal(err)
	}

	events := r.Events()
	if len(events) != 1 || events[0].ID != "booking-from-B" {
		t.Fatalf("stale response overwrote newer navigation: %+v", events)
	}
}

func TestLoadRangeSuppressesDuplicateInFlight(t *testing.T) {
	calls := 0
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	api := &fakeAPI{}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		calls++
		started <- struct{}{}
		<-release
		return nil, nil
	}

	r := NewReconciler(api, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- r.LoadRange(context.Background(), rangeStart, rangeEnd) }()
	<-started

	// Same logical navigation while the first is in flight: no second fetch.
	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("expected a single fetch, got %d", calls)
	}
}

func TestCreateBookingAppendsWithoutReload(t *testing.T) {
	listCalls := 0
	api := &fakeAPI{
		created: &models.Booking{
			ID:      "new",
			Status:  "confirmed",
			StartAt: rangeStart.Add(10 * time.Hour),
			EndAt:   rangeStart.Add(11 * time.Hour),
		},
	}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		listCalls++
		return []models.Booking{rangeBooking("a", "pending", rangeStart)}, nil
	}

	r := NewReconciler(api, zap.NewNop())
	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	payload := bookingapi.BookingPayload{
		StartAt:  "2026-04-06T10:00:00Z",
		EndAt:    "2026-04-06T11:00:00Z",
		Services: []bookingapi.ServiceLinePayload{{ServiceID: "s1", Price: 3000}},
	}
	if _, err := r.CreateBooking(context.Background(), payload); err != nil {
		t.Fatal(err)
	}

	if listCalls != 1 {
		t.Fatalf("create must not trigger a reload, got %d list calls", listCalls)
	}

	ids := map[string]int{}
	for _, ev := range r.Events() {
		ids[ev.ID]++
	}
	if ids["booking-new"] != 1 || ids["booking-a"] != 1 {
		t.Fatalf("unexpected visible set: %v", ids)
	}
}

func TestCreateBookingValidatesBeforeNetwork(t *testing.T) {
	api := &fakeAPI{}
	r := NewReconciler(api, zap.NewNop())

	cases := []bookingapi.BookingPayload{
		{StartAt: "bad", EndAt: "2026-04-06T11:00:00Z", Services: []bookingapi.ServiceLinePayload{{ServiceID: "s"}}},
		{StartAt: "2026-04-06T11:00:00Z", EndAt: "2026-04-06T10:00:00Z", Services: []bookingapi.ServiceLinePayload{{ServiceID: "s"}}},
		{StartAt: "2026-04-06T10:00:00Z", EndAt: "2026-04-06T11:00:00Z"},
	}

	for i, payload := range cases {
		if _, err := r.CreateBooking(context.Background(), payload); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
	if api.created != nil {
		t.Fatal("no network call should have been made")
	}
}

func TestUpdateBookingTriggersScopedReload(t *testing.T) {
	listCalls := 0
	api := &fakeAPI{}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		listCalls++
		return nil, nil
	}

	r := NewReconciler(api, zap.NewNop())
	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	payload := bookingapi.BookingPayload{
		StartAt:  "2026-04-06T10:00:00Z",
		EndAt:    "2026-04-06T11:00:00Z",
		Services: []bookingapi.ServiceLinePayload{{ServiceID: "s1"}},
	}
	if _, err := r.UpdateBooking(context.Background(), "a", payload); err != nil {
		t.Fatal(err)
	}

	if listCalls != 2 {
		t.Fatalf("edit must reload the current range, got %d list calls", listCalls)
	}
}

func TestChangeStatusPatchesLocally(t *testing.T) {
	listCalls := 0
	api := &fakeAPI{}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		listCalls++
		return []models.Booking{rangeBooking("a", "confirmed", rangeStart)}, nil
	}

	r := NewReconciler(api, zap.NewNop())
	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	if err := r.MarkCompleted(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}

	if listCalls != 1 {
		t.Fatal("status change must not reload")
	}

	events := r.Events()
	want := ColorsFor("completed")
	if events[0].BackgroundColor != want.Background {
		t.Fatalf("event color not patched: %s", events[0].BackgroundColor)
	}
}

func TestMarkNoShowRequiresConfirmed(t *testing.T) {
	api := &fakeAPI{}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		return []models.Booking{rangeBooking("a", "pending", rangeStart)}, nil
	}

	r := NewReconciler(api, zap.NewNop())
	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	if err := r.MarkNoShow(context.Background(), "a"); err == nil {
		t.Fatal("expected invalid_state for pending booking")
	}
	if len(api.statusCalls) != 0 {
		t.Fatal("guard must reject before the network call")
	}
}

func TestDeleteBookingRemovesOnlyThatEvent(t *testing.T) {
	api := &fakeAPI{}
	api.listBookings = func(start, end *time.Time) ([]models.Booking, error) {
		return []models.Booking{
			rangeBooking("abc", "confirmed", rangeStart),
			rangeBooking("xyz", "confirmed", rangeStart.Add(2 * time.Hour)),
		}, nil
	}

	r := NewReconciler(api, zap.NewNop())
	if err := r.LoadRange(context.Background(), rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}

	if err := r.DeleteBooking(context.Background(), "abc"); err != nil {
		t.Fatal(err)
	}

	events := r.Events()
	if len(events) != 1 || events[0].ID != "booking-xyz" {
		t.Fatalf("unexpected visible set after delete: %+v", events)
	}
}
