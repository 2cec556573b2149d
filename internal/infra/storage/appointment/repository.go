package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/dbmetrics"
	"github.com/swiftmoving/booking-service/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

// appointmentColumns полный набор колонок таблицы appointments
var appointmentColumns = []string{
	"id",
	"booking_id",
	"business_unit",
	"customer_name",
	"customer_phone",
	"customer_email",
	"service_type",
	"appointment_date",
	"start_time",
	"pickup_address",
	"dropoff_address",
	"estimate",
	"status",
	"notes",
	"previous_date",
	"previous_start_time",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на переезд
// Обе операционные компании хранятся в одной таблице с дискриминатором
// business_unit: календарь доступности у компаний общий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на переезд
// Если в контексте передана активная транзакция, использует её -
// создание записи после проверки доступности должно происходить
// в одной транзакции с этой проверкой
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	estimateJSON, err := json.Marshal(appt.Estimate)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal estimate: %v", ErrEncodeEstimate, err)
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"booking_id",
			"business_unit",
			"customer_name",
			"customer_phone",
			"customer_email",
			"service_type",
			"appointment_date",
			"start_time",
			"pickup_address",
			"dropoff_address",
			"estimate",
			"status",
			"notes",
		).
		Values(
			appt.BookingID,
			appt.BusinessUnit,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.CustomerEmail,
			appt.ServiceType,
			appt.Date,
			appt.StartTime,
			appt.PickupAddress,
			appt.DropoffAddress,
			estimateJSON,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBookingID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByBookingID получает запись по booking ID
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter получает записи с гибкой фильтрацией
// Для подсчета занятости календаря фильтр должен оставлять BusinessUnit
// пустым: проверка доступности обязана видеть записи ОБЕИХ компаний
//
// Примеры использования:
//
// 1. Все активные записи на дату по обеим компаниям (проверка доступности):
//    filter := domain.AppointmentsFilter{Date: &date}
//
// 2. Записи одной компании за период (админка):
//    filter := domain.AppointmentsFilter{BusinessUnit: &unit, StartDate: &from, EndDate: &to}
//
// 3. Все записи включая отмененные:
//    filter := domain.AppointmentsFilter{IncludeCancelled: true}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.BusinessUnit != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_unit": *filter.BusinessUnit})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	// Внутри транзакции выборка на конкретную дату блокируется (FOR UPDATE):
	// так проверка доступности и вставка записи становятся атомарными
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Reschedule переносит запись на новые дату и время
// Предыдущие дата и время архивируются в previous_date/previous_start_time
func (r *Repository) Reschedule(ctx context.Context, bookingID string, schedule domain.RescheduleUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("appointment_date", schedule.NewDate).
		Set("start_time", schedule.NewStartTime).
		Set("previous_date", schedule.PreviousDate).
		Set("previous_start_time", schedule.PreviousStartTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Reschedule")
}

// Cancel отменяет запись с указанием причины
// Статус cancelled терминальный: обратного перехода нет
func (r *Repository) Cancel(ctx context.Context, bookingID string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Cancel")
}

// Delete физически удаляет запись
// Используется только административным каналом; обычный поток всегда
// отменяет запись через Cancel, сохраняя историю
func (r *Repository) Delete(ctx context.Context, bookingID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

// checkAffected возвращает ErrAppointmentNotFound, если запрос не затронул строк
func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// scanAppointment сканирует одну строку в доменную модель
func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var (
		appt         domain.Appointment
		estimateJSON []byte
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := scan(
		&appt.ID,
		&appt.BookingID,
		&appt.BusinessUnit,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.CustomerEmail,
		&appt.ServiceType,
		&appt.Date,
		&appt.StartTime,
		&appt.PickupAddress,
		&appt.DropoffAddress,
		&estimateJSON,
		&appt.Status,
		&appt.Notes,
		&appt.PreviousDate,
		&appt.PreviousStartTime,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(estimateJSON, &appt.Estimate); err != nil {
		return nil, fmt.Errorf("unmarshal estimate snapshot: %v", err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
