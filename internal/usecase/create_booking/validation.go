package create_booking

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staff ID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer ID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if err := validateDates(req); err != nil {
		return err
	}

	if err := validateItems(req.Items); err != nil {
		return err
	}

	if req.TotalAmount != nil {
		if err := validateAmount("total amount", *req.TotalAmount); err != nil {
			return err
		}
	}

	if err := validateAmount("deposit amount", req.DepositAmount); err != nil {
		return err
	}

	if req.DepositAmount.IsPositive() && !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func validateDates(req *Request) error {
	if req.PickupDate.IsZero() || req.ReturnDate.IsZero() {
		return fmt.Errorf("%w: pickup and return dates are required", ErrInvalidDates)
	}

	pickup := calendar.DateOf(req.PickupDate)
	ret := calendar.DateOf(req.ReturnDate)

	if ret.Before(pickup) {
		return fmt.Errorf("%w: return date is before pickup date", ErrInvalidDates)
	}

	days := int(ret.Sub(pickup).Hours()/24) + 1
	if days > domain.MaxRentalDays {
		return fmt.Errorf("%w: rental period of %d days exceeds %d", ErrInvalidDates, days, domain.MaxRentalDays)
	}

	return nil
}

func validateItems(items []ItemRequest) error {
	if len(items) > domain.MaxItemsPerBooking {
		return fmt.Errorf("%w: too many items (max %d)", ErrInvalidInput, domain.MaxItemsPerBooking)
	}

	for _, item := range items {
		if item.ItemID <= 0 {
			return fmt.Errorf("%w: item ID must be positive", ErrInvalidInput)
		}
		if item.Quantity < 1 || item.Quantity > domain.MaxItemQuantity {
			return fmt.Errorf("%w: quantity of item %d must be between 1 and %d", ErrInvalidInput, item.ItemID, domain.MaxItemQuantity)
		}
	}

	return nil
}

// validateAmount проверяет знак, разрядность и масштаб денежной суммы
func validateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, field)
	}
	if !domain.IsValidMoney(amount) {
		return fmt.Errorf("%w: %s must not exceed %s and have at most %d decimal places",
			ErrInvalidInput, field, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale), domain.MoneyScale)
	}
	return nil
}

// validateCatalogPrice отклоняет вещи с отрицательной или непредставимой ценой из каталога
func validateCatalogPrice(itemID int64, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: item %d has negative price in catalog", ErrInvalidInput, itemID)
	}
	if !domain.IsValidMoney(price) {
		return fmt.Errorf("%w: item %d has unsupported price in catalog", ErrInvalidInput, itemID)
	}
	return nil
}
