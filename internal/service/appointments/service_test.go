package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftmoving/booking-service/internal/domain"
	apptRepo "github.com/swiftmoving/booking-service/internal/infra/storage/appointment"
	"github.com/swiftmoving/booking-service/internal/integrations/notifier"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
	"github.com/swiftmoving/booking-service/internal/service/availability"
	"github.com/swiftmoving/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment

	rescheduleErr error
	cancelErr     error
	deleteErr     error
}

func (r *fakeAppointmentRepo) GetByBookingID(_ context.Context, bookingID string) (*domain.Appointment, error) {
	for _, appt := range r.appointments {
		if appt.BookingID == bookingID {
			copied := *appt
			return &copied, nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if filter.BusinessUnit != nil && appt.BusinessUnit != *filter.BusinessUnit {
			continue
		}
		if filter.Date != nil && !appt.Date.Equal(*filter.Date) {
			continue
		}
		if !filter.IncludeCancelled && appt.IsCancelled() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) Reschedule(_ context.Context, bookingID string, schedule domain.RescheduleUpdate) error {
	if r.rescheduleErr != nil {
		return r.rescheduleErr
	}
	for _, appt := range r.appointments {
		if appt.BookingID == bookingID {
			appt.PreviousDate = &schedule.PreviousDate
			appt.PreviousStartTime = &schedule.PreviousStartTime
			appt.Date = schedule.NewDate
			appt.StartTime = schedule.NewStartTime
			return nil
		}
	}
	return apptRepo.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) Cancel(_ context.Context, bookingID string, reason string) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	for _, appt := range r.appointments {
		if appt.BookingID == bookingID {
			appt.Status = domain.StatusCancelled
			appt.CancellationReason = &reason
			now := time.Now()
			appt.CancelledAt = &now
			return nil
		}
	}
	return apptRepo.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, bookingID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, appt := range r.appointments {
		if appt.BookingID == bookingID {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return apptRepo.ErrAppointmentNotFound
}

type fakeSettingsRepo struct {
	settings *domain.AvailabilitySettings
	err      error
}

func (r *fakeSettingsRepo) Get(context.Context) (*domain.AvailabilitySettings, error) {
	return r.settings, r.err
}

type fakeNotifier struct {
	events chan notifier.Event
}

func (n *fakeNotifier) Send(_ context.Context, event notifier.Event) error {
	n.events <- event
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustTime(value string) types.TimeString {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		panic(err)
	}
	return ts
}

func testSettings() *domain.AvailabilitySettings {
	return &domain.AvailabilitySettings{
		WorkingDays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		StartTime:             mustTime("08:00"),
		EndTime:               mustTime("18:00"),
		SlotDurationMinutes:   60,
		SlotCapacity:          1,
		MaxAppointmentsPerDay: 8,
	}
}

var (
	// вторник и среда одной недели
	currentDate = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	targetDate  = time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

func testAppointment(bookingID string) *domain.Appointment {
	return &domain.Appointment{
		ID:             1,
		BookingID:      bookingID,
		BusinessUnit:   domain.UnitSwiftMoving,
		CustomerName:   "John Smith",
		CustomerPhone:  "+1-555-0134",
		CustomerEmail:  "john@example.com",
		ServiceType:    domain.ServiceMoving,
		Date:           currentDate,
		StartTime:      mustTime("10:00"),
		PickupAddress:  "12 Oak St",
		DropoffAddress: "80 Elm St",
		Estimate:       domain.Estimate{Total: 760.00},
		Status:         domain.StatusConfirmed,
		CreatedAt:      today,
		UpdatedAt:      today,
	}
}

func newTestService(repo *fakeAppointmentRepo, notifierClient *fakeNotifier) *Service {
	svc := NewService(
		repo,
		&fakeSettingsRepo{settings: testSettings()},
		availability.NewChecker(),
		notifierClient,
		fakeTxManager{},
		nopLogger{},
	)
	svc.timeProvider = fixedTime{now: today}
	return svc
}

func TestGetByBookingID_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.GetByBookingID(context.Background(), "SM-1A2B3C")

	require.NoError(t, err)
	assert.Equal(t, "SM-1A2B3C", resp.BookingID)
	assert.Equal(t, domain.UnitSwiftMoving, resp.BusinessUnit)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestGetByBookingID_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.GetByBookingID(context.Background(), "SM-MISSING")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Nil(t, resp)
}

func TestList_FilterByBusinessUnit(t *testing.T) {
	smAppt := testAppointment("SM-1A2B3C")
	alAppt := testAppointment("AL-4D5E6F")
	alAppt.BusinessUnit = domain.UnitApexLabor

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{smAppt, alAppt}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	unit := domain.UnitApexLabor
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{BusinessUnit: &unit})

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "AL-4D5E6F", resp.Appointments[0].BookingID)
}

func TestList_CancelledExcludedByDefault(t *testing.T) {
	active := testAppointment("SM-1A2B3C")
	cancelled := testAppointment("SM-CANCEL")
	cancelled.Status = domain.StatusCancelled

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{active, cancelled}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.List(context.Background(), &models.ListAppointmentsRequest{IncludeCancelled: true})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestList_UnknownBusinessUnit(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	unit := domain.BusinessUnit("speedy_vans")
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{BusinessUnit: &unit})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	events := make(chan notifier.Event, 1)
	svc := newTestService(repo, &fakeNotifier{events: events})

	err := svc.Cancel(context.Background(), "SM-1A2B3C", &models.CancelAppointmentRequest{Reason: "customer request"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[0].Status)
	require.NotNil(t, repo.appointments[0].CancellationReason)
	assert.Equal(t, "customer request", *repo.appointments[0].CancellationReason)

	select {
	case event := <-events:
		assert.Equal(t, notifier.EventBookingCancelled, event.Type)
		assert.Equal(t, "SM-1A2B3C", event.BookingID)
	case <-time.After(time.Second):
		t.Fatal("expected cancellation event")
	}
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	appt := testAppointment("SM-1A2B3C")
	appt.Status = domain.StatusCancelled

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{appt}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	err := svc.Cancel(context.Background(), "SM-1A2B3C", &models.CancelAppointmentRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	err := svc.Cancel(context.Background(), "SM-MISSING", &models.CancelAppointmentRequest{})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_FreedSlotBecomesAvailable(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	events := make(chan notifier.Event, 1)
	svc := newTestService(repo, &fakeNotifier{events: events})

	require.NoError(t, svc.Cancel(context.Background(), "SM-1A2B3C", &models.CancelAppointmentRequest{}))
	<-events

	// освобожденный слот снова принимает перенос другой записи
	other := testAppointment("AL-4D5E6F")
	other.BusinessUnit = domain.UnitApexLabor
	other.Date = targetDate
	repo.appointments = append(repo.appointments, other)

	resp, err := svc.Reschedule(context.Background(), "AL-4D5E6F", &models.RescheduleAppointmentRequest{
		NewDate:      currentDate,
		NewStartTime: mustTime("10:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, currentDate, resp.Date)
}

func TestReschedule_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	events := make(chan notifier.Event, 1)
	svc := newTestService(repo, &fakeNotifier{events: events})

	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{
		NewDate:      targetDate,
		NewStartTime: mustTime("14:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, targetDate, resp.Date)
	assert.Equal(t, "14:00", resp.StartTime.String())

	require.NotNil(t, resp.PreviousDate)
	assert.Equal(t, currentDate, *resp.PreviousDate)
	require.NotNil(t, resp.PreviousStartTime)
	assert.Equal(t, "10:00", resp.PreviousStartTime.String())

	select {
	case event := <-events:
		assert.Equal(t, notifier.EventBookingRescheduled, event.Type)
		assert.Equal(t, "2026-03-17", event.PreviousDate)
		assert.Equal(t, "10:00", event.PreviousStartTime)
	case <-time.After(time.Second):
		t.Fatal("expected reschedule event")
	}
}

func TestReschedule_SameSlotAllowed(t *testing.T) {
	// переносимая запись не занимает собственный слот
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{
		NewDate:      currentDate,
		NewStartTime: mustTime("10:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime.String())
}

func TestReschedule_TargetSlotFull(t *testing.T) {
	moving := testAppointment("SM-1A2B3C")
	occupant := testAppointment("AL-4D5E6F")
	occupant.BusinessUnit = domain.UnitApexLabor
	occupant.Date = targetDate
	occupant.StartTime = mustTime("14:00")

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{moving, occupant}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{
		NewDate:      targetDate,
		NewStartTime: mustTime("14:00"),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Contains(t, err.Error(), availability.ReasonSlotFull)
	assert.Nil(t, resp)
}

func TestReschedule_CancelledAppointment(t *testing.T) {
	appt := testAppointment("SM-1A2B3C")
	appt.Status = domain.StatusCancelled

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{appt}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{
		NewDate:      targetDate,
		NewStartTime: mustTime("14:00"),
	})

	assert.ErrorIs(t, err, ErrCannotReschedule)
	assert.Nil(t, resp)
}

func TestReschedule_DateInPast(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{
		NewDate:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		NewStartTime: mustTime("14:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Nil(t, resp)
}

func TestReschedule_NonWorkingDay(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	// воскресенье
	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{
		NewDate:      time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
		NewStartTime: mustTime("10:00"),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Contains(t, err.Error(), availability.ReasonNotWorkingDay)
	assert.Nil(t, resp)
}

func TestReschedule_MissingFields(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.Reschedule(context.Background(), "SM-1A2B3C", &models.RescheduleAppointmentRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestReschedule_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	resp, err := svc.Reschedule(context.Background(), "SM-MISSING", &models.RescheduleAppointmentRequest{
		NewDate:      targetDate,
		NewStartTime: mustTime("14:00"),
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Nil(t, resp)
}

func TestDelete_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment("SM-1A2B3C")}}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	err := svc.Delete(context.Background(), "SM-1A2B3C")

	require.NoError(t, err)
	assert.Empty(t, repo.appointments)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, &fakeNotifier{events: make(chan notifier.Event, 1)})

	err := svc.Delete(context.Background(), "SM-MISSING")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
