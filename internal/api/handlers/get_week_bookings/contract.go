package get_week_bookings

import (
	"context"

	bookingModels "github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

type CalendarService interface {
	WeekBookings(ctx context.Context, month, year, week int, categoryID *int64) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
