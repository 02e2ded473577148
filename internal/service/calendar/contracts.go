package calendar

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// BookingLister источник бронирований для недельного представления
type BookingLister interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
