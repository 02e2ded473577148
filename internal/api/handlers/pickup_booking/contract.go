package pickup_booking

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	Pickup(ctx context.Context, bookingID int64, staffID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
