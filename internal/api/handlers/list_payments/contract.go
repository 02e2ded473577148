package list_payments

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	ListPayments(ctx context.Context, bookingID int64) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
