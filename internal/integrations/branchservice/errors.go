package branchservice

import "errors"

var (
	// ErrUnauthorized возвращается при истёкшей или невалидной сессии
	ErrUnauthorized = errors.New("branchservice client: unauthorized")

	// ErrUnavailable возвращается при сетевой ошибке
	ErrUnavailable = errors.New("branchservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("branchservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("branchservice client: internal error")
)
