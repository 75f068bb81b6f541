package types

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat формат времени "HH:mm", используемый во всём API
const TimeFormat = "15:04"

// TimeString represents a time of day as "HH:mm"
// The remote API exchanges all times in this format; values coming back
// as "HH:mm:ss" are truncated to minutes on parse.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывая секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит и нормализует строку времени.
// Принимает "HH:mm" и "HH:mm:ss", возвращает ошибку для любого другого формата.
func NewTimeStringFromString(s string) (TimeString, error) {
	normalized := normalize(s)
	if _, err := time.Parse(TimeFormat, normalized); err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	return TimeString(normalized), nil
}

// normalize обрезает секунды: "09:30:00" -> "09:30"
func normalize(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) >= 3 {
		return parts[0] + ":" + parts[1]
	}
	return s
}

// String returns the "HH:mm" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for an empty (unset) time
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:mm"
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time %q: expected HH:mm", string(t))
	}
	return nil
}

// Minutes returns the minute-of-day value (0..1439)
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given
// number of minutes. Переход через полночь не поддерживается.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:mm", string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore returns true if t is strictly earlier than other.
// Невалидные значения сравниваются лексикографически, что для "HH:mm" эквивалентно.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
