package seatassign

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("seatassign: appointment not found")

	// ErrSeatNotFound возвращается, когда место не найдено
	ErrSeatNotFound = errors.New("seatassign: seat not found")

	// ErrSeatOccupied возвращается, когда место занято другой записью
	// на момент живой проверки; мутация при этом не отправляется
	ErrSeatOccupied = errors.New("seatassign: seat is occupied")

	// ErrSeatUnavailable возвращается, когда место свободно, но его статус
	// (уборка, обслуживание) не допускает привязку записи
	ErrSeatUnavailable = errors.New("seatassign: seat is not available")

	// ErrIllegalTransition возвращается, когда текущий статус записи
	// не допускает запрошенный переход
	ErrIllegalTransition = errors.New("seatassign: illegal status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("seatassign: invalid input data")

	// ErrConflict возвращается, когда удалённый сервис отклонил переход
	// (состояние изменилось между проверкой и отправкой)
	ErrConflict = errors.New("seatassign: rejected by remote service")

	// ErrUnauthorized возвращается при истёкшей сессии администратора
	ErrUnauthorized = errors.New("seatassign: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("seatassign: internal error")
)
