package check_availability

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetReservedItemIDs возвращает вещи, занятые активными бронированиями в периоде
	GetReservedItemIDs(ctx context.Context, from, to time.Time, excludeBookingID *int64) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
