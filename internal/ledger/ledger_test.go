package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "amount = %s, want %s", got, want)
}

func gown() Candidate {
	return Candidate{ItemID: 10, CategoryID: 1, Name: "Evening gown", Price: dec("50")}
}

func veil() Candidate {
	return Candidate{ItemID: 20, CategoryID: 2, Name: "Veil", Price: dec("12.50")}
}

func TestAddOrMergeItem(t *testing.T) {
	items := AddOrMergeItem(nil, gown())
	items = AddOrMergeItem(items, gown())

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assertAmount(t, "50", items[0].UnitPrice)
}

func TestAddOrMergeItem_KeepsPositionAndPrice(t *testing.T) {
	items := AddOrMergeItem(nil, gown())
	items = AddOrMergeItem(items, veil())

	repriced := gown()
	repriced.Price = dec("75")
	items = AddOrMergeItem(items, repriced)

	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].ItemID)
	assert.Equal(t, 2, items[0].Quantity)
	assertAmount(t, "50", items[0].UnitPrice)
	assert.Equal(t, int64(20), items[1].ItemID)
}

func TestAddOrMergeItem_DoesNotMutateInput(t *testing.T) {
	original := AddOrMergeItem(nil, gown())
	_ = AddOrMergeItem(original, gown())

	assert.Equal(t, 1, original[0].Quantity)
}

func TestChangeQuantity(t *testing.T) {
	items := AddOrMergeItem(nil, gown())

	tests := []struct {
		name  string
		index int
		delta int
		want  int
	}{
		{name: "increment", index: 0, delta: 1, want: 2},
		{name: "jump", index: 0, delta: 4, want: 5},
		{name: "floor at one", index: 0, delta: -1, want: 1},
		{name: "large negative", index: 0, delta: -10, want: 1},
		{name: "out of range index", index: 3, delta: 1, want: 1},
		{name: "negative index", index: -1, delta: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangeQuantity(items, tt.index, tt.delta)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Quantity)
			assert.Equal(t, 1, items[0].Quantity)
		})
	}
}

func TestChangeQuantity_DecrementAtOneLeavesListUnchanged(t *testing.T) {
	items := AddOrMergeItem(AddOrMergeItem(nil, gown()), veil())

	got := ChangeQuantity(items, 1, -1)
	assert.Equal(t, items, got)
}

func TestRemoveItem(t *testing.T) {
	items := AddOrMergeItem(AddOrMergeItem(nil, gown()), veil())

	got := RemoveItem(items, 0)
	require.Len(t, got, 1)
	assert.Equal(t, int64(20), got[0].ItemID)
	require.Len(t, items, 2)

	assert.Equal(t, items, RemoveItem(items, 5))
}

func TestRecomputeTotal(t *testing.T) {
	twoGowns := ChangeQuantity(AddOrMergeItem(nil, gown()), 0, 1)

	tests := []struct {
		name    string
		items   []LineItem
		current string
		want    string
	}{
		{name: "zero total adopts subtotal", items: twoGowns, current: "0", want: "100"},
		{name: "items override manual total", items: twoGowns, current: "80", want: "100"},
		{name: "manual total kept without items", items: nil, current: "80", want: "80"},
		{name: "empty and zero", items: nil, current: "0", want: "0"},
		{
			name:    "mixed prices",
			items:   AddOrMergeItem(twoGowns, veil()),
			current: "0",
			want:    "112.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, RecomputeTotal(tt.items, dec(tt.current)))
		})
	}
}

func TestRecomputeBalance(t *testing.T) {
	assertAmount(t, "30", RecomputeBalance(dec("50"), dec("20")))
	assertAmount(t, "-20", RecomputeBalance(dec("50"), dec("70")))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		balance string
		deposit string
		want    PaymentStatus
	}{
		{name: "zero booking is pending", total: "0", balance: "0", deposit: "0", want: StatusPending},
		{name: "fully paid", total: "100", balance: "0", deposit: "100", want: StatusPaid},
		{name: "partially paid", total: "100", balance: "40", deposit: "60", want: StatusPartial},
		{name: "nothing paid", total: "100", balance: "100", deposit: "0", want: StatusPending},
		{name: "overpaid", total: "100", balance: "-20", deposit: "120", want: StatusPaid},
		{name: "deposit without total", total: "0", balance: "-10", deposit: "10", want: StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(dec(tt.total), dec(tt.balance), dec(tt.deposit)))
		})
	}
}

func TestPreviewPaymentOutcome(t *testing.T) {
	assertAmount(t, "0", PreviewPaymentOutcome(dec("30"), dec("50")))
	assertAmount(t, "10", PreviewPaymentOutcome(dec("30"), dec("20")))
	assertAmount(t, "0", PreviewPaymentOutcome(dec("30"), dec("30")))

	// Превью обрезается до нуля, а реальный баланс уходит в минус
	assertAmount(t, "-20", RecomputeBalance(dec("30"), dec("50")))
}
