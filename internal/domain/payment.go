package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was received
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

// IsValid returns true for a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer:
		return true
	default:
		return false
	}
}

// Payment represents money received toward a booking
type Payment struct {
	ID         int64
	BookingID  int64
	Amount     decimal.Decimal
	Method     PaymentMethod
	Note       *string
	ReceivedBy int64
	CreatedAt  time.Time
	ReversedAt *time.Time
}

// IsReversed returns true if the payment was reversed and no longer counts toward the deposit
func (p *Payment) IsReversed() bool {
	return p.ReversedAt != nil
}
