package ledger

import "github.com/shopspring/decimal"

// Form is the editable financial state of a booking form.
// Methods return a new Form; the receiver is left untouched.
type Form struct {
	Items   []LineItem
	Total   decimal.Decimal
	Deposit decimal.Decimal
}

// Summary is the derived view of a Form
type Summary struct {
	Total   decimal.Decimal
	Deposit decimal.Decimal
	Balance decimal.Decimal
	Status  PaymentStatus
}

// NewForm starts a form from existing items and amounts without recomputing the total
func NewForm(items []LineItem, total, deposit decimal.Decimal) Form {
	return Form{
		Items:   clone(items, 0),
		Total:   total,
		Deposit: deposit,
	}
}

// AddItem merges the candidate into the items and recomputes the total
func (f Form) AddItem(candidate Candidate) Form {
	return f.withItems(AddOrMergeItem(f.Items, candidate))
}

// ChangeQuantity adjusts a line's quantity and recomputes the total
func (f Form) ChangeQuantity(index, delta int) Form {
	return f.withItems(ChangeQuantity(f.Items, index, delta))
}

// RemoveItem drops a line and recomputes the total
func (f Form) RemoveItem(index int) Form {
	return f.withItems(RemoveItem(f.Items, index))
}

// SetTotal records a manually typed total. It only sticks while there are no items.
func (f Form) SetTotal(total decimal.Decimal) Form {
	f.Items = clone(f.Items, 0)
	f.Total = total
	return f
}

// SetDeposit replaces the deposit
func (f Form) SetDeposit(deposit decimal.Decimal) Form {
	f.Items = clone(f.Items, 0)
	f.Deposit = deposit
	return f
}

// Balance returns Total − Deposit
func (f Form) Balance() decimal.Decimal {
	return RecomputeBalance(f.Total, f.Deposit)
}

// Status returns the derived payment status
func (f Form) Status() PaymentStatus {
	return Status(f.Total, f.Balance(), f.Deposit)
}

// Summary returns every derived field at once
func (f Form) Summary() Summary {
	return Summary{
		Total:   f.Total,
		Deposit: f.Deposit,
		Balance: f.Balance(),
		Status:  f.Status(),
	}
}

func (f Form) withItems(items []LineItem) Form {
	f.Items = items
	f.Total = RecomputeTotal(items, f.Total)
	return f
}
