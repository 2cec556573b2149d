package calculate_estimate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeConfigProvider struct {
	cfg *domain.PricingConfiguration
	err error
}

func (p *fakeConfigProvider) GetActive(context.Context) (*domain.PricingConfiguration, error) {
	return p.cfg, p.err
}

func testConfig() *domain.PricingConfiguration {
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
	}
}

func TestExecute_Success(t *testing.T) {
	uc := NewUseCase(&fakeConfigProvider{cfg: testConfig()}, pricing.NewEngine(nopLogger{}), nopLogger{})

	estimate, err := uc.Execute(context.Background(), &domain.QuoteRequest{
		ServiceType:      domain.ServiceMoving,
		CrewSize:         2,
		DistanceMiles:    10,
		DriveTimeMinutes: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, 760.00, estimate.Total)
	assert.Equal(t, 93.33, estimate.ServiceCharge)
}

func TestExecute_ConfigUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeConfigProvider{err: errors.New("connection refused")}, pricing.NewEngine(nopLogger{}), nopLogger{})

	estimate, err := uc.Execute(context.Background(), &domain.QuoteRequest{
		ServiceType: domain.ServiceMoving,
		CrewSize:    2,
	})

	assert.ErrorIs(t, err, ErrConfigUnavailable)
	assert.Nil(t, estimate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeConfigProvider{cfg: testConfig()}, pricing.NewEngine(nopLogger{}), nopLogger{})

	testCases := []struct {
		name string
		req  *domain.QuoteRequest
	}{
		{
			name: "unknown service type",
			req:  &domain.QuoteRequest{ServiceType: "helicopter", CrewSize: 2},
		},
		{
			name: "negative distance",
			req:  &domain.QuoteRequest{ServiceType: domain.ServiceMoving, CrewSize: 2, DistanceMiles: -1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			estimate, err := uc.Execute(context.Background(), tc.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, estimate)
		})
	}
}
