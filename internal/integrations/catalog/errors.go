package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена в каталоге
	ErrItemNotFound = errors.New("catalog client: item not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalog client: invalid response")
)
