package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrNotEditable возвращается при попытке изменить завершённую
	// или отменённую запись: терминальные записи неизменяемы
	ErrNotEditable = errors.New("update_appointment: cannot edit a completed or cancelled appointment")

	// ErrInvalidInput возвращается при некорректных входных данных формы
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrSeatRequired возвращается, когда целевой статус требует места,
	// а место не указано
	ErrSeatRequired = errors.New("update_appointment: seat is required for this status")

	// ErrPastDate возвращается для даты раньше сегодняшнего дня
	ErrPastDate = errors.New("update_appointment: date is in the past")

	// ErrBranchClosed возвращается, когда филиал закрыт в выбранный день недели
	ErrBranchClosed = errors.New("update_appointment: branch is closed")

	// ErrOutsideWorkingHours возвращается, когда время вне рабочих часов филиала
	ErrOutsideWorkingHours = errors.New("update_appointment: time is outside working hours")

	// ErrConflict возвращается, когда удалённый сервис отклонил обновление
	// (например, запись параллельно изменена другим администратором)
	ErrConflict = errors.New("update_appointment: rejected by appointment service")

	// ErrUnauthorized возвращается при истёкшей сессии администратора
	ErrUnauthorized = errors.New("update_appointment: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
