// Package ledger derives a booking's financial summary (total, remaining
// balance, payment status) from its line items and deposit.
//
// Every function is pure: input slices are never modified, a fresh slice is
// returned instead.
package ledger

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus is the derived payment progress of a booking. It is never stored.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

// LineItem is one catalog item on a booking
type LineItem struct {
	ItemID     int64
	CategoryID int64
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
}

// Amount returns UnitPrice × Quantity
func (l LineItem) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Candidate is a catalog item selected for addition to a booking
type Candidate struct {
	ItemID     int64
	CategoryID int64
	Name       string
	Price      decimal.Decimal
}

// AddOrMergeItem appends the candidate with quantity 1, or bumps the quantity
// of the existing line with the same ItemID keeping its position and price.
func AddOrMergeItem(items []LineItem, candidate Candidate) []LineItem {
	result := clone(items, 1)

	if i := IndexOf(result, candidate.ItemID); i >= 0 {
		result[i].Quantity++
		return result
	}

	return append(result, LineItem{
		ItemID:     candidate.ItemID,
		CategoryID: candidate.CategoryID,
		Name:       candidate.Name,
		UnitPrice:  candidate.Price,
		Quantity:   1,
	})
}

// ChangeQuantity adds delta to the line's quantity.
// Quantity never drops below 1; such a change (or a bad index) leaves the items as they are.
func ChangeQuantity(items []LineItem, index, delta int) []LineItem {
	result := clone(items, 0)
	if index < 0 || index >= len(result) {
		return result
	}

	next := result[index].Quantity + delta
	if next < 1 {
		return result
	}

	result[index].Quantity = next
	return result
}

// RemoveItem deletes the line at index
func RemoveItem(items []LineItem, index int) []LineItem {
	if index < 0 || index >= len(items) {
		return clone(items, 0)
	}

	result := make([]LineItem, 0, len(items)-1)
	result = append(result, items[:index]...)
	return append(result, items[index+1:]...)
}

// IndexOf returns the position of the line with itemID, or -1
func IndexOf(items []LineItem, itemID int64) int {
	for i, item := range items {
		if item.ItemID == itemID {
			return i
		}
	}
	return -1
}

// Subtotal sums UnitPrice × Quantity over all lines
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount())
	}
	return sum
}

// RecomputeTotal returns the item subtotal unless the items are empty and a
// non-zero total was typed in manually, in which case that total is kept.
// A manual total does not survive once any item is present.
func RecomputeTotal(items []LineItem, currentTotal decimal.Decimal) decimal.Decimal {
	if currentTotal.IsZero() || len(items) > 0 {
		return Subtotal(items)
	}
	return currentTotal
}

// RecomputeBalance returns total − deposit. The result is negative on overpayment.
func RecomputeBalance(total, deposit decimal.Decimal) decimal.Decimal {
	return total.Sub(deposit)
}

// Status classifies payment progress.
// A zero total is never paid, even when the balance is zero.
func Status(total, balance, deposit decimal.Decimal) PaymentStatus {
	switch {
	case total.IsPositive() && !balance.IsPositive():
		return StatusPaid
	case deposit.IsPositive():
		return StatusPartial
	default:
		return StatusPending
	}
}

// PreviewPaymentOutcome is the balance shown before a payment is confirmed,
// clamped at zero. The stored balance after the payment may be negative.
func PreviewPaymentOutcome(currentBalance, amount decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, currentBalance.Sub(amount))
}

func clone(items []LineItem, extra int) []LineItem {
	result := make([]LineItem, len(items), len(items)+extra)
	copy(result, items)
	return result
}
