package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

// TimeString строковое представление времени в формате HH:MM
// Используется для времени начала слотов и бронирований
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// toTime парсит TimeString в time.Time (дата не имеет значения)
func (t TimeString) toTime() (time.Time, error) {
	return time.Parse(timeLayout, string(t))
}

// IsBefore возвращает true, если время t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	t1, err1 := t.toTime()
	t2, err2 := other.toTime()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.Before(t2)
}

// IsAfter возвращает true, если время t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	t1, err1 := t.toTime()
	t2, err2 := other.toTime()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.After(t2)
}

// AddMinutes прибавляет minutes минут к времени
// Результат не переходит через полночь - 23:30 + 60 минут вернет ошибку
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.toTime()
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}

	result := parsed.Add(time.Duration(minutes) * time.Minute)

	// Проверяем переход через полночь
	if result.Day() != parsed.Day() {
		return "", fmt.Errorf("time overflow: %s + %d minutes crosses midnight", t, minutes)
	}

	return NewTimeString(result), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает string, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// scanString парсит строковое значение из БД
// Колонки TIME приходят как "10:00:00" - отрезаем секунды
func (t *TimeString) scanString(s string) error {
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
