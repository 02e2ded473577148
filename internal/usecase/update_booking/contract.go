package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/catalog"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetReservedItemIDs(ctx context.Context, from, to time.Time, excludeBookingID *int64) ([]int64, error)
	UpdateDetails(ctx context.Context, booking *domain.Booking) error
	ReplaceItems(ctx context.Context, bookingID int64, items []ledger.LineItem) error
}

// CatalogClient интерфейс клиента каталога вещей
type CatalogClient interface {
	GetItems(ctx context.Context, itemIDs []int64) (map[int64]*catalog.Item, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
