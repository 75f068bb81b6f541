package seatmap

import "errors"

var (
	// ErrUnauthorized возвращается при истёкшей сессии администратора
	ErrUnauthorized = errors.New("seatmap: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("seatmap: internal error")
)
