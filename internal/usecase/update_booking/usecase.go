package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/integrations/catalog"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	txManager     TransactionManager
	prepDays      int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	prepDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		prepDays:      prepDays,
		logger:        logger,
	}
}

// Execute выполняет use case изменения бронирования
// Менять можно только бронирования в статусе reserved
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, staff=%d, pickup=%s, return=%s, items=%d",
		req.BookingID, req.StaffID, req.PickupDate.Format(domain.DateFormat), req.ReturnDate.Format(domain.DateFormat), len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	pickup := calendar.DateOf(req.PickupDate)
	ret := calendar.DateOf(req.ReturnDate)

	// 2. Читаем текущее бронирование, чтобы знать, какие вещи новые
	current, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 3. Цены новых вещей берём из каталога, у уже добавленных цена сохраняется
	catalogItems, err := uc.catalogClient.GetItems(ctx, newItemIDs(current.Items, req.Items))
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			uc.logger.Warn("UpdateBooking: catalog item not found: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrItemNotFound, err)
		}
		uc.logger.Error("UpdateBooking: failed to get catalog items: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog items: %w", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Перепроверяем статус под блокировкой и сохраняем
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrBookingNotEditable
		}

		form, err := buildForm(booking, req, catalogItems)
		if err != nil {
			uc.logger.Warn("UpdateBooking: %v", err)
			return err
		}

		from, to := domain.ReservationWindow(pickup, ret, uc.prepDays)
		reserved, err := uc.bookingRepo.GetReservedItemIDs(txCtx, from, to, &booking.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get reserved items: %v", err)
			return fmt.Errorf("%w: failed to get reserved items: %w", ErrInternal, err)
		}

		booking.PickupDate = pickup
		booking.ReturnDate = ret
		booking.Items = form.Items
		booking.TotalAmount = form.Total
		booking.Notes = req.Notes

		if conflicts := domain.ConflictingItems(booking.ItemIDs(), reserved); len(conflicts) > 0 {
			uc.logger.Warn("UpdateBooking: items %v are reserved between %s and %s",
				conflicts, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
			return fmt.Errorf("%w: item ids %v", ErrItemsNotAvailable, conflicts)
		}

		if err := uc.bookingRepo.UpdateDetails(txCtx, booking); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.ReplaceItems(txCtx, booking.ID, booking.Items); err != nil {
			uc.logger.Error("UpdateBooking: failed to replace items of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to replace items: %w", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated, total=%s, balance=%s, status=%s",
		result.ID, result.TotalAmount, result.Balance(), result.PaymentStatus())

	return &Response{Booking: result}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}
	return booking, nil
}

// buildForm пересобирает позиции бронирования.
// Без вещей остаётся ручная сумма, либо прежняя, если ручная не передана.
func buildForm(booking *domain.Booking, req *Request, catalogItems map[int64]*catalog.Item) (ledger.Form, error) {
	total := booking.TotalAmount
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}
	form := ledger.NewForm(nil, total, booking.DepositAmount)

	for _, requested := range req.Items {
		candidate, err := candidateFor(booking.Items, requested.ItemID, catalogItems)
		if err != nil {
			return form, err
		}
		for i := 0; i < requested.Quantity; i++ {
			form = form.AddItem(candidate)
		}
	}

	if !domain.IsValidMoney(form.Total) {
		return form, fmt.Errorf("%w: total amount exceeds %s", ErrInvalidInput, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale))
	}

	return form, nil
}

func candidateFor(existing []ledger.LineItem, itemID int64, catalogItems map[int64]*catalog.Item) (ledger.Candidate, error) {
	if i := ledger.IndexOf(existing, itemID); i >= 0 {
		line := existing[i]
		return ledger.Candidate{
			ItemID:     line.ItemID,
			CategoryID: line.CategoryID,
			Name:       line.Name,
			Price:      line.UnitPrice,
		}, nil
	}

	item, ok := catalogItems[itemID]
	if !ok {
		return ledger.Candidate{}, fmt.Errorf("%w: id=%d", ErrItemNotFound, itemID)
	}
	if item.Price.IsNegative() || !domain.IsValidMoney(item.Price) {
		return ledger.Candidate{}, fmt.Errorf("%w: item %d has unsupported price %s in catalog", ErrInvalidInput, itemID, item.Price)
	}

	return ledger.Candidate{
		ItemID:     item.ID,
		CategoryID: item.CategoryID,
		Name:       item.Name,
		Price:      item.Price,
	}, nil
}

// newItemIDs возвращает ID запрошенных вещей, которых ещё нет в бронировании
func newItemIDs(existing []ledger.LineItem, requested []ItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(requested))
	ids := make([]int64, 0)
	for _, item := range requested {
		if _, ok := seen[item.ItemID]; ok {
			continue
		}
		seen[item.ItemID] = struct{}{}
		if ledger.IndexOf(existing, item.ItemID) < 0 {
			ids = append(ids, item.ItemID)
		}
	}
	return ids
}
