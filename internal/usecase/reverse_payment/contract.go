package reverse_payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateLedger(ctx context.Context, id int64, total, deposit decimal.Decimal) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, bookingID, paymentID int64) (*domain.Payment, error)
	MarkReversed(ctx context.Context, bookingID, paymentID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	PaymentReversed(method string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
