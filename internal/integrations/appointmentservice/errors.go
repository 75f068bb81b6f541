package appointmentservice

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointmentservice client: appointment not found")

	// ErrConflict возвращается, когда удалённый сервис отклонил корректно
	// сформированный переход (место занято между проверкой и коммитом,
	// либо статус изменён другим администратором)
	ErrConflict = errors.New("appointmentservice client: conflict")

	// ErrUnauthorized возвращается при истёкшей или невалидной сессии.
	// Не ретраится: хост-приложение должно переавторизоваться.
	ErrUnauthorized = errors.New("appointmentservice client: unauthorized")

	// ErrUnavailable возвращается при сетевой ошибке
	ErrUnavailable = errors.New("appointmentservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")
)
