package create_booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/catalog"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetReservedItemIDs(ctx context.Context, from, to time.Time, excludeBookingID *int64) ([]int64, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// CatalogClient интерфейс клиента каталога вещей
type CatalogClient interface {
	GetItems(ctx context.Context, itemIDs []int64) (map[int64]*catalog.Item, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingCreated()
	PaymentRecorded(method string, amount decimal.Decimal)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
