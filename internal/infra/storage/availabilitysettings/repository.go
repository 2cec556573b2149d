package availabilitysettings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/dbmetrics"
	"github.com/swiftmoving/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий настроек календаря доступности
// Настройки хранятся единственной строкой: бригады у компаний общие,
// поэтому и календарь один на весь бизнес
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущие настройки календаря
// Перечитывается при каждом запросе доступности, без кеширования
func (r *Repository) Get(ctx context.Context) (*domain.AvailabilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"working_days",
		"start_time",
		"end_time",
		"slot_duration_minutes",
		"slot_capacity",
		"max_appointments_per_day",
		"blocked_dates",
		"updated_at",
	).
		From("availability_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings  domain.AvailabilitySettings
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		pq.Array(&settings.WorkingDays),
		&settings.StartTime,
		&settings.EndTime,
		&settings.SlotDurationMinutes,
		&settings.SlotCapacity,
		&settings.MaxAppointmentsPerDay,
		pq.Array(&settings.BlockedDates),
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.UpdatedAt = updatedAt.Time
	return &settings, nil
}

// Update обновляет настройки календаря
func (r *Repository) Update(ctx context.Context, settings *domain.AvailabilitySettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_settings").
		Set("working_days", pq.Array(settings.WorkingDays)).
		Set("start_time", settings.StartTime).
		Set("end_time", settings.EndTime).
		Set("slot_duration_minutes", settings.SlotDurationMinutes).
		Set("slot_capacity", settings.SlotCapacity).
		Set("max_appointments_per_day", settings.MaxAppointmentsPerDay).
		Set("blocked_dates", pq.Array(settings.BlockedDates)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settings.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
