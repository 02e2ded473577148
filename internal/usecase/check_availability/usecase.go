package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// UseCase use case для получения вещей, занятых на дату
type UseCase struct {
	bookingRepo BookingRepository
	prepDays    int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, prepDays int, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		prepDays:    prepDays,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("CheckAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	pickup := calendar.DateOf(req.Date)
	ret := pickup
	if req.ReturnDate != nil {
		ret = calendar.DateOf(*req.ReturnDate)
	}

	if ret.Before(pickup) {
		uc.logger.Warn("CheckAvailability: return %s before pickup %s",
			ret.Format(domain.DateFormat), pickup.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: return date is before pickup date", ErrInvalidDate)
	}

	uc.logger.Info("CheckAvailability: pickup=%s, return=%s, prep_days=%d",
		pickup.Format(domain.DateFormat), ret.Format(domain.DateFormat), uc.prepDays)

	// 2. Расширяем период на дни подготовки и ищем занятые вещи
	from, to := domain.ReservationWindow(pickup, ret, uc.prepDays)

	reserved, err := uc.bookingRepo.GetReservedItemIDs(ctx, from, to, req.ExcludeID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reserved items: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved items: %w", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: %d items reserved between %s and %s",
		len(reserved), from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	return &Response{
		Date:            pickup,
		ReturnDate:      ret,
		ReservedItemIDs: reserved,
		PrepDays:        uc.prepDays,
	}, nil
}
