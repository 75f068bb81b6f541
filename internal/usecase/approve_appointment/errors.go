package approve_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("approve_appointment: appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_appointment: invalid input data")

	// ErrNotApprovable возвращается, когда запись не в чистом статусе pending:
	// одобрить можно только запись без уже привязанного места
	ErrNotApprovable = errors.New("approve_appointment: appointment cannot be approved")

	// ErrNoServices возвращается, когда у записи нет ни одной услуги
	ErrNoServices = errors.New("approve_appointment: appointment has no services")

	// ErrSeatUnavailable возвращается, когда живая проверка доступности
	// показала, что место уже занято. Обновление при этом не отправляется;
	// администратору нужно обновить карту мест и повторить.
	ErrSeatUnavailable = errors.New("approve_appointment: seat is not available")

	// ErrConflict возвращается, когда удалённый сервис отклонил одобрение
	// (место перехвачено между проверкой и коммитом)
	ErrConflict = errors.New("approve_appointment: rejected by appointment service")

	// ErrUnauthorized возвращается при истёкшей сессии администратора
	ErrUnauthorized = errors.New("approve_appointment: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_appointment: internal error")
)
