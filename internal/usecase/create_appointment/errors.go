package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных формы.
	// Сообщение содержит имя первого непрошедшего поля (fail-fast).
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPastDate возвращается для даты раньше сегодняшнего дня
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrBranchClosed возвращается, когда филиал закрыт в выбранный день недели
	ErrBranchClosed = errors.New("create_appointment: branch is closed")

	// ErrOutsideWorkingHours возвращается, когда время вне рабочих часов филиала
	ErrOutsideWorkingHours = errors.New("create_appointment: time is outside working hours")

	// ErrConflict возвращается, когда удалённый сервис отклонил создание записи
	ErrConflict = errors.New("create_appointment: rejected by appointment service")

	// ErrUnauthorized возвращается при истёкшей сессии администратора
	ErrUnauthorized = errors.New("create_appointment: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
