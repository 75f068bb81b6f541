package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrIllegalTransition возвращается, когда текущий статус записи
	// не допускает запрошенный переход
	ErrIllegalTransition = errors.New("appointments: illegal status transition")

	// ErrNotDeletable возвращается при попытке удалить запись,
	// которая не является pending или cancelled
	ErrNotDeletable = errors.New("appointments: appointment cannot be deleted in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrConflict возвращается, когда удалённый сервис отклонил переход
	ErrConflict = errors.New("appointments: rejected by appointment service")

	// ErrUnauthorized возвращается при истёкшей сессии администратора
	ErrUnauthorized = errors.New("appointments: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
