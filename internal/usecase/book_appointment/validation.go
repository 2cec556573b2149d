package book_appointment

import (
	"fmt"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверки стоимости (вид услуги, отрицательные значения) выполняет
// движок расчета; здесь проверяется только сама запись
func validateRequest(req *Request) error {
	if !req.BusinessUnit.IsValid() {
		return fmt.Errorf("%w: unknown business unit %q", ErrInvalidInput, req.BusinessUnit)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if req.CustomerPhone == "" && req.CustomerEmail == "" {
		return fmt.Errorf("%w: customer phone or email is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
