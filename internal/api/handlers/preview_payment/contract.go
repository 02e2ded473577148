package preview_payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	PreviewPayment(ctx context.Context, bookingID int64, amount decimal.Decimal) (*models.PaymentPreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
