package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией
// По умолчанию возвращаются только активные (reserved, picked_up)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.CategoryID != nil {
		logMsg += fmt.Sprintf(", category=%d", *req.CategoryID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("List: end date before start date")
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListPayments получает историю платежей бронирования, включая сторнированные
func (s *Service) ListPayments(ctx context.Context, bookingID int64) (*models.PaymentListResponse, error) {
	s.logger.Info("ListPayments: fetching payments for booking id=%d", bookingID)

	if _, err := s.getBooking(ctx, "ListPayments", bookingID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListPayments: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListPayments: fetched %d payments for booking id=%d", len(payments), bookingID)
	return models.FromDomainPaymentList(payments), nil
}

// PreviewPayment показывает, какой остаток увидит клиент после платежа amount.
// Ничего не записывает; остаток не уходит ниже нуля.
func (s *Service) PreviewPayment(ctx context.Context, bookingID int64, amount decimal.Decimal) (*models.PaymentPreviewResponse, error) {
	if amount.IsNegative() || !domain.IsValidMoney(amount) {
		s.logger.Warn("PreviewPayment: unsupported amount for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: amount must be between 0 and %s with at most %d decimal places",
			ErrInvalidInput, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale), domain.MoneyScale)
	}

	s.logger.Info("PreviewPayment: booking id=%d, amount=%s", bookingID, amount)

	booking, err := s.getBooking(ctx, "PreviewPayment", bookingID)
	if err != nil {
		return nil, err
	}

	balance := booking.Balance()

	return &models.PaymentPreviewResponse{
		BookingID:      booking.ID,
		Amount:         models.Money(amount),
		CurrentBalance: models.Money(balance),
		RemainingAfter: models.Money(ledger.PreviewPaymentOutcome(balance, amount)),
		PaymentStatus:  string(booking.PaymentStatus()),
	}, nil
}

// Cancel отменяет бронирование; вещи освобождаются
// Отменить можно только бронирование, вещи по которому ещё не выданы
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by staff=%d", bookingID, req.StaffID)

	reason := strings.TrimSpace(req.CancellationReason)
	if len(reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: cancellation reason too long (max %d characters)", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return s.transition(ctx, "Cancel", bookingID, func(txCtx context.Context, booking *domain.Booking) error {
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}
		return s.bookingRepo.Cancel(txCtx, bookingID, reason)
	})
}

// Pickup фиксирует выдачу вещей клиенту
// Требуется хотя бы частичная оплата
func (s *Service) Pickup(ctx context.Context, bookingID int64, staffID int64) (*models.BookingResponse, error) {
	s.logger.Info("Pickup: booking id=%d by staff=%d", bookingID, staffID)

	return s.transition(ctx, "Pickup", bookingID, func(txCtx context.Context, booking *domain.Booking) error {
		if !booking.CanBePickedUp() {
			s.logger.Warn("Pickup: booking id=%d cannot be picked up, status=%s, payment=%s",
				bookingID, booking.Status, booking.PaymentStatus())
			return ErrCannotPickup
		}
		return s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusPickedUp)
	})
}

// Return фиксирует возврат вещей
func (s *Service) Return(ctx context.Context, bookingID int64, staffID int64) (*models.BookingResponse, error) {
	s.logger.Info("Return: booking id=%d by staff=%d", bookingID, staffID)

	return s.transition(ctx, "Return", bookingID, func(txCtx context.Context, booking *domain.Booking) error {
		if !booking.CanBeReturned() {
			s.logger.Warn("Return: booking id=%d cannot be returned, status=%s", bookingID, booking.Status)
			return ErrCannotReturn
		}
		if booking.PaymentStatus() != ledger.StatusPaid {
			s.logger.Warn("Return: booking id=%d returned with outstanding balance %s", bookingID, booking.Balance())
		}
		return s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusReturned)
	})
}

// transition блокирует бронирование, применяет change и перечитывает результат
func (s *Service) transition(
	ctx context.Context,
	op string,
	bookingID int64,
	change func(txCtx context.Context, booking *domain.Booking) error,
) (*models.BookingResponse, error) {
	var updated *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, op, bookingID)
		if err != nil {
			return err
		}

		if err := change(txCtx, booking); err != nil {
			if errors.Is(err, ErrCannotCancel) || errors.Is(err, ErrCannotPickup) || errors.Is(err, ErrCannotReturn) {
				return err
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
		}

		updated, err = s.getBooking(txCtx, op, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: booking id=%d is now %s", op, bookingID, updated.Status)
	return models.FromDomainBooking(updated), nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}
