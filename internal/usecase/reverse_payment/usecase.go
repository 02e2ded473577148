package reverse_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
)

// UseCase use case для отмены (сторнирования) платежа
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

// Execute выполняет use case отмены платежа
// Платёж не удаляется, а помечается сторнированным; статус оплаты может откатиться назад
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReversePayment: booking=%d, payment=%d, staff=%d", req.BookingID, req.PaymentID, req.StaffID)

	if req.BookingID <= 0 || req.PaymentID <= 0 {
		uc.logger.Warn("ReversePayment: invalid ids booking=%d, payment=%d", req.BookingID, req.PaymentID)
		return nil, fmt.Errorf("%w: booking and payment IDs must be positive", ErrInvalidInput)
	}

	var result Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ReversePayment: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ReversePayment: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2. Получаем платёж
		payment, err := uc.paymentRepo.GetByID(txCtx, req.BookingID, req.PaymentID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("ReversePayment: payment id=%d not found in booking id=%d", req.PaymentID, req.BookingID)
				return ErrPaymentNotFound
			}
			uc.logger.Error("ReversePayment: failed to get payment id=%d: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to get payment: %w", ErrInternal, err)
		}

		if payment.IsReversed() {
			uc.logger.Warn("ReversePayment: payment id=%d already reversed", payment.ID)
			return ErrPaymentAlreadyReversed
		}

		// 3. Сторнируем платёж и уменьшаем депозит
		if err := uc.paymentRepo.MarkReversed(txCtx, req.BookingID, req.PaymentID); err != nil {
			uc.logger.Error("ReversePayment: failed to mark payment id=%d reversed: %v", payment.ID, err)
			return fmt.Errorf("%w: failed to reverse payment: %w", ErrInternal, err)
		}

		form := booking.Ledger().SetDeposit(booking.DepositAmount.Sub(payment.Amount))
		if err := uc.bookingRepo.UpdateLedger(txCtx, booking.ID, form.Total, form.Deposit); err != nil {
			uc.logger.Error("ReversePayment: failed to update ledger of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update ledger: %w", ErrInternal, err)
		}

		now := time.Now()
		payment.ReversedAt = &now
		booking.DepositAmount = form.Deposit

		result.Booking = booking
		result.Payment = payment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.PaymentReversed(string(result.Payment.Method))

	uc.logger.Info("ReversePayment: payment id=%d reversed, booking=%d, balance=%s, status=%s",
		result.Payment.ID, result.Booking.ID, result.Booking.Balance(), result.Booking.PaymentStatus())

	return &result, nil
}
