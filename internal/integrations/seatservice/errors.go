package seatservice

import "errors"

var (
	// ErrSeatNotFound возвращается, когда место не найдено
	ErrSeatNotFound = errors.New("seatservice client: seat not found")

	// ErrUnauthorized возвращается при истёкшей или невалидной сессии
	ErrUnauthorized = errors.New("seatservice client: unauthorized")

	// ErrUnavailable возвращается при сетевой ошибке
	ErrUnavailable = errors.New("seatservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("seatservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("seatservice client: internal error")
)
