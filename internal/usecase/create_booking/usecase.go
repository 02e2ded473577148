package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/catalog"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
)

// UseCase use case для создания бронирования проката
type UseCase struct {
	bookingRepo   BookingRepository
	paymentRepo   PaymentRepository
	catalogClient CatalogClient
	txManager     TransactionManager
	metrics       Metrics
	prepDays      int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	metrics Metrics,
	prepDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentRepo:   paymentRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		metrics:       metrics,
		prepDays:      prepDays,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и запись выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: staff=%d, customer=%d, pickup=%s, return=%s, items=%d",
		req.StaffID, req.CustomerID, req.PickupDate.Format(domain.DateFormat), req.ReturnDate.Format(domain.DateFormat), len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	pickup := calendar.DateOf(req.PickupDate)
	ret := calendar.DateOf(req.ReturnDate)

	// 2. Получаем вещи из каталога
	catalogItems, err := uc.catalogClient.GetItems(ctx, uniqueItemIDs(req.Items))
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: catalog item not found: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrItemNotFound, err)
		}
		uc.logger.Error("CreateBooking: failed to get catalog items: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog items: %w", ErrInternal, err)
	}

	// 3. Собираем позиции и итоговую сумму
	form, err := buildForm(req, catalogItems)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	summary := form.Summary()
	uc.logger.Info("CreateBooking: total=%s, deposit=%s, balance=%s, status=%s",
		summary.Total, summary.Deposit, summary.Balance, summary.Status)

	var result Response

	// 4. Проверяем занятость и сохраняем бронирование
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		from, to := domain.ReservationWindow(pickup, ret, uc.prepDays)

		reserved, err := uc.bookingRepo.GetReservedItemIDs(txCtx, from, to, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get reserved items: %v", err)
			return fmt.Errorf("%w: failed to get reserved items: %w", ErrInternal, err)
		}

		booking := &domain.Booking{
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			PickupDate:    pickup,
			ReturnDate:    ret,
			Status:        domain.StatusReserved,
			Items:         form.Items,
			TotalAmount:   form.Total,
			DepositAmount: form.Deposit,
			Notes:         req.Notes,
			CreatedBy:     req.StaffID,
		}

		if conflicts := domain.ConflictingItems(booking.ItemIDs(), reserved); len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: items %v are reserved between %s and %s",
				conflicts, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
			return fmt.Errorf("%w: item ids %v", ErrItemsNotAvailable, conflicts)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		result.Booking = created

		// 4.1. Предоплата записывается как первый платёж
		if !form.Deposit.IsPositive() {
			return nil
		}

		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:  created.ID,
			Amount:     form.Deposit,
			Method:     req.PaymentMethod,
			ReceivedBy: req.StaffID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to record deposit for booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to record deposit: %w", ErrInternal, err)
		}
		result.Deposit = payment

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated()
	if result.Deposit != nil {
		uc.metrics.PaymentRecorded(string(result.Deposit.Method), result.Deposit.Amount)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.Booking.ID)

	return &result, nil
}

// buildForm раскладывает запрошенные вещи в позиции через ledger.Form.
// Ручная сумма задаётся до добавления вещей и пересчитывается, если вещи есть.
func buildForm(req *Request, catalogItems map[int64]*catalog.Item) (ledger.Form, error) {
	form := ledger.NewForm(nil, decimal.Zero, req.DepositAmount)
	if req.TotalAmount != nil {
		form = form.SetTotal(*req.TotalAmount)
	}

	for _, requested := range req.Items {
		item, ok := catalogItems[requested.ItemID]
		if !ok {
			return form, fmt.Errorf("%w: id=%d", ErrItemNotFound, requested.ItemID)
		}
		if err := validateCatalogPrice(item.ID, item.Price); err != nil {
			return form, err
		}

		candidate := ledger.Candidate{
			ItemID:     item.ID,
			CategoryID: item.CategoryID,
			Name:       item.Name,
			Price:      item.Price,
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

func uniqueItemIDs(items []ItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemID]; ok {
			continue
		}
		seen[item.ItemID] = struct{}{}
		ids = append(ids, item.ItemID)
	}
	return ids
}
