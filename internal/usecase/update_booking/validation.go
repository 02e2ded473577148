package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking ID must be positive", ErrInvalidInput)
	}

	if req.PickupDate.IsZero() || req.ReturnDate.IsZero() {
		return fmt.Errorf("%w: pickup and return dates are required", ErrInvalidDates)
	}

	pickup := calendar.DateOf(req.PickupDate)
	ret := calendar.DateOf(req.ReturnDate)

	if ret.Before(pickup) {
		return fmt.Errorf("%w: return date is before pickup date", ErrInvalidDates)
	}

	if days := int(ret.Sub(pickup).Hours()/24) + 1; days > domain.MaxRentalDays {
		return fmt.Errorf("%w: rental period of %d days exceeds %d", ErrInvalidDates, days, domain.MaxRentalDays)
	}

	if len(req.Items) > domain.MaxItemsPerBooking {
		return fmt.Errorf("%w: too many items (max %d)", ErrInvalidInput, domain.MaxItemsPerBooking)
	}

	for _, item := range req.Items {
		if item.ItemID <= 0 {
			return fmt.Errorf("%w: item ID must be positive", ErrInvalidInput)
		}
		if item.Quantity < 1 || item.Quantity > domain.MaxItemQuantity {
			return fmt.Errorf("%w: quantity of item %d must be between 1 and %d", ErrInvalidInput, item.ItemID, domain.MaxItemQuantity)
		}
	}

	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return fmt.Errorf("%w: total amount cannot be negative", ErrInvalidInput)
		}
		if !domain.IsValidMoney(*req.TotalAmount) {
			return fmt.Errorf("%w: total amount must not exceed %s and have at most %d decimal places",
				ErrInvalidInput, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale), domain.MoneyScale)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
