package record_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
)

// UseCase use case для внесения платежа по бронированию
type UseCase struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case внесения платежа
// Переплата допускается: остаток становится отрицательным, статус - paid
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordPayment: booking=%d, staff=%d, method=%s",
		req.BookingID, req.StaffID, req.Method)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordPayment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RecordPayment: amount=%s", req.Amount)

	var result Response

	// 2. Записываем платёж и пересчитываем депозит под блокировкой бронирования
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RecordPayment: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RecordPayment: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.1. Проверяем, можно ли принимать оплату
		if !booking.CanAcceptPayment() {
			if booking.Status == domain.StatusCancelled {
				uc.logger.Warn("RecordPayment: booking id=%d is cancelled", booking.ID)
				return ErrBookingCancelled
			}
			uc.logger.Warn("RecordPayment: booking id=%d is already paid", booking.ID)
			return ErrBookingAlreadyPaid
		}

		deposit := booking.DepositAmount.Add(req.Amount)
		if !domain.IsValidMoney(deposit) {
			uc.logger.Warn("RecordPayment: deposit of booking id=%d would exceed %s", booking.ID, domain.MaxMoneyAmount)
			return fmt.Errorf("%w: deposit would exceed %s", ErrInvalidInput, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale))
		}

		result.RemainingAfter = ledger.PreviewPaymentOutcome(booking.Balance(), req.Amount)

		// 2.2. Сохраняем платёж
		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:  booking.ID,
			Amount:     req.Amount,
			Method:     req.Method,
			Note:       req.Note,
			ReceivedBy: req.StaffID,
		})
		if err != nil {
			uc.logger.Error("RecordPayment: failed to create payment for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to create payment: %w", ErrInternal, err)
		}

		// 2.3. Депозит - сумма всех действующих платежей
		form := booking.Ledger().SetDeposit(deposit)
		if err := uc.bookingRepo.UpdateLedger(txCtx, booking.ID, form.Total, form.Deposit); err != nil {
			uc.logger.Error("RecordPayment: failed to update ledger of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update ledger: %w", ErrInternal, err)
		}

		booking.DepositAmount = form.Deposit
		result.Booking = booking
		result.Payment = payment

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.PaymentRecorded(string(req.Method), req.Amount)

	uc.logger.Info("RecordPayment: payment id=%d recorded, booking=%d, balance=%s, status=%s",
		result.Payment.ID, result.Booking.ID, result.Booking.Balance(), result.Booking.PaymentStatus())

	return &result, nil
}
