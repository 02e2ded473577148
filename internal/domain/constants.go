package domain

import "github.com/shopspring/decimal"

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxPaymentNoteLength        = 255
	MaxRentalDays               = 60
	MaxItemsPerBooking          = 50
	MaxItemQuantity             = 20
)

// Денежные суммы хранятся в NUMERIC(12,2)
const (
	MoneyScale              = 2
	MaxMoneyIntegerDigits   = 10
	maxMoneyInputScale      = 18
	maxMoneyCoefficientBits = 128
)

// MaxMoneyAmount наибольшая по модулю сумма, которую принимает сервис
var MaxMoneyAmount = decimal.RequireFromString("9999999999.99")

// IsValidMoney сообщает, помещается ли сумма в NUMERIC(12,2) без округления.
// Порядок проверяется до Round и Cmp: иначе 1e5000000 разворачивается в миллионы цифр.
func IsValidMoney(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}

	if d.Coefficient().BitLen() > maxMoneyCoefficientBits {
		return false
	}

	exp := int(d.Exponent())
	if exp < -maxMoneyInputScale || d.NumDigits()+exp > MaxMoneyIntegerDigits {
		return false
	}

	return d.Abs().LessThanOrEqual(MaxMoneyAmount) && d.Equal(d.Round(MoneyScale))
}

// DateFormat is the wire format for calendar dates
const DateFormat = "2006-01-02" // YYYY-MM-DD

// ActiveStatuses список статусов, при которых вещи заняты бронированием
var ActiveStatuses = []RentalStatus{
	StatusReserved,
	StatusPickedUp,
}

// ParseRentalStatus конвертирует строку в RentalStatus с валидацией
func ParseRentalStatus(s string) (RentalStatus, bool) {
	status := RentalStatus(s)
	switch status {
	case StatusReserved, StatusPickedUp, StatusReturned, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}
