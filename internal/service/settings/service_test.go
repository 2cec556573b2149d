package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftmoving/booking-service/internal/domain"
	settingsRepo "github.com/swiftmoving/booking-service/internal/infra/storage/availabilitysettings"
	configRepo "github.com/swiftmoving/booking-service/internal/infra/storage/pricingconfig"
	"github.com/swiftmoving/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeConfigRepo struct {
	active  *domain.PricingConfiguration
	getErr  error
	replErr error
}

func (r *fakeConfigRepo) GetActive(context.Context) (*domain.PricingConfiguration, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.active, nil
}

func (r *fakeConfigRepo) ReplaceActive(_ context.Context, cfg *domain.PricingConfiguration) (*domain.PricingConfiguration, error) {
	if r.replErr != nil {
		return nil, r.replErr
	}
	replaced := *cfg
	if r.active != nil {
		replaced.Version = r.active.Version + 1
	} else {
		replaced.Version = 1
	}
	r.active = &replaced
	return &replaced, nil
}

type fakeSettingsRepo struct {
	settings  *domain.AvailabilitySettings
	getErr    error
	updateErr error

	updated *domain.AvailabilitySettings
}

func (r *fakeSettingsRepo) Get(context.Context) (*domain.AvailabilitySettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *domain.AvailabilitySettings) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = settings
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

func validConfig() *domain.PricingConfiguration {
	return &domain.PricingConfiguration{
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
		SpecialtyItemFees: map[string]domain.SpecialtyItemFee{
			"piano": {FlatFee: 250.00, ExtraTimeHours: 1.0},
		},
		PackingMaterials:      map[string]float64{"small_box": 2.50},
		InsuranceRateFraction: 0.01,
	}
}

func validSettings() *domain.AvailabilitySettings {
	return &domain.AvailabilitySettings{
		WorkingDays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StartTime:             mustTime("08:00"),
		EndTime:               mustTime("18:00"),
		SlotDurationMinutes:   60,
		SlotCapacity:          1,
		MaxAppointmentsPerDay: 8,
		BlockedDates:          []string{"2026-07-04"},
	}
}

func newTestService(cfgRepo *fakeConfigRepo, setRepo *fakeSettingsRepo) *Service {
	return NewService(cfgRepo, setRepo, fakeTxManager{}, nopLogger{})
}

func TestGetPricingConfig_Success(t *testing.T) {
	active := validConfig()
	active.Version = 3
	svc := newTestService(&fakeConfigRepo{active: active}, &fakeSettingsRepo{})

	cfg, err := svc.GetPricingConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Version)
}

func TestGetPricingConfig_NotFound(t *testing.T) {
	svc := newTestService(&fakeConfigRepo{getErr: configRepo.ErrConfigNotFound}, &fakeSettingsRepo{})

	cfg, err := svc.GetPricingConfig(context.Background())

	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Nil(t, cfg)
}

func TestUpdatePricingConfig_Success(t *testing.T) {
	current := validConfig()
	current.Version = 2
	repo := &fakeConfigRepo{active: current}
	svc := newTestService(repo, &fakeSettingsRepo{})

	updated := validConfig()
	updated.MovingService.BaseHourlyRate = 210.00

	result, err := svc.UpdatePricingConfig(context.Background(), updated)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Version)
	assert.Equal(t, 210.00, repo.active.MovingService.BaseHourlyRate)
}

func TestUpdatePricingConfig_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(cfg *domain.PricingConfiguration)
	}{
		{
			name:   "zero moving base rate",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.MovingService.BaseHourlyRate = 0 },
		},
		{
			name:   "negative labor base rate",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.LaborOnlyService.BaseHourlyRate = -10 },
		},
		{
			name:   "zero single item flat rate",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.SingleItemService.BaseFlatRate = 0 },
		},
		{
			name:   "service charge fraction of one",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.MovingService.ServiceChargeFraction = 1.0 },
		},
		{
			name:   "negative insurance fraction",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.InsuranceRateFraction = -0.01 },
		},
		{
			name:   "negative crew member rate",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.LaborOnlyService.PerExtraCrewMemberRate = -1 },
		},
		{
			name:   "negative stair fee",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.StairFees.HouseRatePerFlight = -5 },
		},
		{
			name: "negative specialty item fee",
			mutate: func(cfg *domain.PricingConfiguration) {
				cfg.SpecialtyItemFees["piano"] = domain.SpecialtyItemFee{FlatFee: -1}
			},
		},
		{
			name:   "negative material price",
			mutate: func(cfg *domain.PricingConfiguration) { cfg.PackingMaterials["small_box"] = -0.50 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeConfigRepo{active: validConfig()}
			svc := newTestService(repo, &fakeSettingsRepo{})

			cfg := validConfig()
			tc.mutate(cfg)

			result, err := svc.UpdatePricingConfig(context.Background(), cfg)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, result)
		})
	}
}

func TestGetAvailabilitySettings_Success(t *testing.T) {
	svc := newTestService(&fakeConfigRepo{}, &fakeSettingsRepo{settings: validSettings()})

	settings, err := svc.GetAvailabilitySettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 60, settings.SlotDurationMinutes)
}

func TestGetAvailabilitySettings_NotFound(t *testing.T) {
	svc := newTestService(&fakeConfigRepo{}, &fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound})

	settings, err := svc.GetAvailabilitySettings(context.Background())

	assert.ErrorIs(t, err, ErrSettingsNotFound)
	assert.Nil(t, settings)
}

func TestUpdateAvailabilitySettings_Success(t *testing.T) {
	current := validSettings()
	current.ID = 7
	repo := &fakeSettingsRepo{settings: current}
	svc := newTestService(&fakeConfigRepo{}, repo)

	updated := validSettings()
	updated.SlotCapacity = 2

	err := svc.UpdateAvailabilitySettings(context.Background(), updated)

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
	assert.Equal(t, 2, repo.updated.SlotCapacity)
}

func TestUpdateAvailabilitySettings_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(s *domain.AvailabilitySettings)
	}{
		{
			name:   "no working days",
			mutate: func(s *domain.AvailabilitySettings) { s.WorkingDays = nil },
		},
		{
			name:   "unknown weekday",
			mutate: func(s *domain.AvailabilitySettings) { s.WorkingDays = []string{"Funday"} },
		},
		{
			name:   "start after end",
			mutate: func(s *domain.AvailabilitySettings) { s.StartTime = mustTime("19:00") },
		},
		{
			name:   "slot duration too short",
			mutate: func(s *domain.AvailabilitySettings) { s.SlotDurationMinutes = 15 },
		},
		{
			name:   "slot duration too long",
			mutate: func(s *domain.AvailabilitySettings) { s.SlotDurationMinutes = 300 },
		},
		{
			name:   "zero slot capacity",
			mutate: func(s *domain.AvailabilitySettings) { s.SlotCapacity = 0 },
		},
		{
			name:   "max appointments above cap",
			mutate: func(s *domain.AvailabilitySettings) { s.MaxAppointmentsPerDay = 100 },
		},
		{
			name:   "malformed blocked date",
			mutate: func(s *domain.AvailabilitySettings) { s.BlockedDates = []string{"07/04/2026"} },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeSettingsRepo{settings: validSettings()}
			svc := newTestService(&fakeConfigRepo{}, repo)

			settings := validSettings()
			tc.mutate(settings)

			err := svc.UpdateAvailabilitySettings(context.Background(), settings)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestUpdateAvailabilitySettings_NotFound(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}
	svc := newTestService(&fakeConfigRepo{}, repo)

	err := svc.UpdateAvailabilitySettings(context.Background(), validSettings())

	assert.ErrorIs(t, err, ErrSettingsNotFound)
}
