package models

import "github.com/rk49trivedi/appsalozy-sub000/internal/domain"

// AssignResult итог привязки записи к месту
type AssignResult struct {
	AppointmentID int64
	SeatID        int64

	// Status производный статус записи после перехода
	// (approved или in_progress)
	Status string
}

// MoveResult итог переноса записи на другое место.
// Moved=false означает перенос на текущее место: состояние не менялось
// и мутация к удалённому сервису не отправлялась.
type MoveResult struct {
	AppointmentID int64
	SeatID        int64
	Status        string
	Moved         bool
}

// ReleaseResult итог снятия записи с места
type ReleaseResult struct {
	AppointmentID int64

	// ReleasedSeatID место, чья занятость была очищена переходом
	ReleasedSeatID int64
	Status         string
}

// FromEffectiveStatus конвертирует производный статус в строку ответа
func FromEffectiveStatus(s domain.EffectiveStatus) string {
	return string(s)
}
