package book_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/integrations/notifier"
	"github.com/swiftmoving/booking-service/internal/service/availability"
	"github.com/swiftmoving/booking-service/internal/service/pricing"
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
	createErr    error
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *appt
	created.ID = int64(len(r.appointments) + 1)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.appointments = append(r.appointments, &created)
	return &created, nil
}

func (r *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if filter.Date != nil && !appt.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

type fakeConfigProvider struct {
	cfg *domain.PricingConfiguration
	err error
}

func (p *fakeConfigProvider) GetActive(context.Context) (*domain.PricingConfiguration, error) {
	return p.cfg, p.err
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

func testPricingConfig() *domain.PricingConfiguration {
	return &domain.PricingConfiguration{
		Version: 1,
		MovingService: domain.MovingServiceRates{
			BaseHourlyRate:            192.50,
			PerMileDistanceAdjustment: 0.75,
			PerExtraCrewMemberRate:    50.00,
			ServiceChargeFraction:     0.14,
		},
		LaborOnlyService: domain.LaborOnlyServiceRates{
			BaseHourlyRate:             115.00,
			PerExtraCrewMemberRate:     55.00,
			PerMileDistanceAdjustment:  0.50,
			RoundTripTravelRatePerMile: 1.60,
			ServiceChargeFraction:      0.08,
		},
		SingleItemService: domain.SingleItemServiceRates{
			BaseFlatRate:          250.00,
			PerMileDistanceRate:   2.00,
			ServiceChargeFraction: 0.10,
		},
		StairFees: domain.StairFeeRates{
			ApartmentRatePerFlight: 50.00,
			HouseRatePerFlight:     35.00,
		},
		InsuranceRateFraction: 0.01,
	}
}

func testAvailabilitySettings() *domain.AvailabilitySettings {
	return &domain.AvailabilitySettings{
		WorkingDays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StartTime:             mustTime("08:00"),
		EndTime:               mustTime("18:00"),
		SlotDurationMinutes:   60,
		SlotCapacity:          1,
		MaxAppointmentsPerDay: 8,
	}
}

func mustTime(value string) types.TimeString {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		panic(err)
	}
	return ts
}

// вторник
var bookingDate = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

var today = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		BusinessUnit:  domain.UnitSwiftMoving,
		CustomerName:  "Jordan Avery",
		CustomerPhone: "+15551234567",
		Date:          bookingDate,
		StartTime:     mustTime("10:00"),
		PickupAddress: "12 Main St",
		Quote: domain.QuoteRequest{
			ServiceType:      domain.ServiceMoving,
			CrewSize:         2,
			DistanceMiles:    10,
			DriveTimeMinutes: 20,
		},
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, configProvider *fakeConfigProvider, settingsRepo *fakeSettingsRepo, notifierClient *fakeNotifier) *UseCase {
	uc := NewUseCase(
		repo,
		configProvider,
		settingsRepo,
		pricing.NewEngine(nopLogger{}),
		availability.NewChecker(),
		notifierClient,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(repo, &fakeConfigProvider{cfg: testPricingConfig()}, &fakeSettingsRepo{settings: testAvailabilitySettings()}, notifierClient)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, "SM", resp.BookingID[:2])
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	// Снимок расчета сохранен на записи
	assert.Equal(t, 760.00, resp.Estimate.Total)
	require.Len(t, repo.appointments, 1)

	select {
	case event := <-notifierClient.events:
		assert.Equal(t, notifier.EventBookingConfirmed, event.Type)
		assert.Equal(t, resp.BookingID, event.BookingID)
	case <-time.After(time.Second):
		t.Fatal("expected booking confirmation event")
	}
}

func TestExecute_SlotTakenByOtherUnit(t *testing.T) {
	// Слот занят другой операционной компанией: бригады общие,
	// перебронирование между компаниями недопустимо
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				BookingID:    domain.NewBookingID(domain.UnitApexLabor),
				BusinessUnit: domain.UnitApexLabor,
				Date:         bookingDate,
				StartTime:    mustTime("10:00"),
				Status:       domain.StatusConfirmed,
			},
		},
	}
	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(repo, &fakeConfigProvider{cfg: testPricingConfig()}, &fakeSettingsRepo{settings: testAvailabilitySettings()}, notifierClient)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, availability.ReasonSlotFull, slotErr.Reason)

	// Запись не создана
	assert.Len(t, repo.appointments, 1)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				BookingID:    domain.NewBookingID(domain.UnitSwiftMoving),
				BusinessUnit: domain.UnitSwiftMoving,
				Date:         bookingDate,
				StartTime:    mustTime("10:00"),
				Status:       domain.StatusCancelled,
			},
		},
	}
	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(repo, &fakeConfigProvider{cfg: testPricingConfig()}, &fakeSettingsRepo{settings: testAvailabilitySettings()}, notifierClient)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestExecute_BlockedDate(t *testing.T) {
	settings := testAvailabilitySettings()
	settings.BlockedDates = []string{bookingDate.Format(domain.DateFormat)}

	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigProvider{cfg: testPricingConfig()}, &fakeSettingsRepo{settings: settings}, notifierClient)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, availability.ReasonDateBlocked, slotErr.Reason)
}

func TestExecute_DateInPast(t *testing.T) {
	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigProvider{cfg: testPricingConfig()}, &fakeSettingsRepo{settings: testAvailabilitySettings()}, notifierClient)

	req := validRequest()
	req.Date = today.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ConfigUnavailable(t *testing.T) {
	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigProvider{err: errors.New("connection refused")}, &fakeSettingsRepo{settings: testAvailabilitySettings()}, notifierClient)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConfigUnavailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	notifierClient := &fakeNotifier{events: make(chan notifier.Event, 1)}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigProvider{cfg: testPricingConfig()}, &fakeSettingsRepo{settings: testAvailabilitySettings()}, notifierClient)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{
			name:   "unknown business unit",
			mutate: func(req *Request) { req.BusinessUnit = "acme_movers" },
		},
		{
			name:   "missing customer name",
			mutate: func(req *Request) { req.CustomerName = "" },
		},
		{
			name: "missing contact info",
			mutate: func(req *Request) {
				req.CustomerPhone = ""
				req.CustomerEmail = ""
			},
		},
		{
			name:   "unknown service type",
			mutate: func(req *Request) { req.Quote.ServiceType = "helicopter" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
