package record_payment

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if !domain.IsValidMoney(req.Amount) {
		return fmt.Errorf("%w: amount must not exceed %s and have at most %d decimal places",
			ErrInvalidInput, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale), domain.MoneyScale)
	}

	if !req.Method.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxPaymentNoteLength {
		return fmt.Errorf("%w: note too long (max %d characters)", ErrInvalidInput, domain.MaxPaymentNoteLength)
	}

	return nil
}
