package calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце, годе или номере недели
	ErrInvalidInput = errors.New("calendar service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar service: internal error")
)
