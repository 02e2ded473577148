package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_SingleItemWithDeposit(t *testing.T) {
	form := Form{}.AddItem(gown()).SetDeposit(dec("20"))

	summary := form.Summary()
	assertAmount(t, "50", summary.Total)
	assertAmount(t, "30", summary.Balance)
	assert.Equal(t, StatusPartial, summary.Status)
}

func TestForm_ManualTotalDiscardedOnceItemsExist(t *testing.T) {
	form := Form{}.SetTotal(dec("200"))
	assertAmount(t, "200", form.Total)
	assertAmount(t, "200", form.Balance())

	form = form.AddItem(veil())
	assertAmount(t, "12.50", form.Total)

	// После удаления всех позиций вручную введённая сумма не восстанавливается
	form = form.RemoveItem(0)
	assertAmount(t, "12.50", form.Total)
}

func TestForm_QuantityChangesRecomputeTotal(t *testing.T) {
	form := Form{}.AddItem(gown()).AddItem(veil())

	form = form.ChangeQuantity(0, 2)
	assertAmount(t, "162.50", form.Total)

	form = form.ChangeQuantity(1, -1)
	assertAmount(t, "162.50", form.Total)
	require.Len(t, form.Items, 2)
}

func TestForm_StatusMovesBackwardOnReversal(t *testing.T) {
	form := Form{}.AddItem(gown())
	assert.Equal(t, StatusPending, form.Status())

	form = form.SetDeposit(dec("20"))
	assert.Equal(t, StatusPartial, form.Status())

	form = form.SetDeposit(dec("50"))
	assert.Equal(t, StatusPaid, form.Status())

	form = form.SetDeposit(dec("20"))
	assert.Equal(t, StatusPartial, form.Status())

	form = form.SetDeposit(decimal.Zero)
	assert.Equal(t, StatusPending, form.Status())
}

func TestForm_IsImmutable(t *testing.T) {
	base := Form{}.AddItem(gown())
	_ = base.AddItem(gown())
	_ = base.SetDeposit(dec("10"))

	assert.Equal(t, 1, base.Items[0].Quantity)
	assertAmount(t, "50", base.Total)
	assert.True(t, base.Deposit.IsZero())
}

func TestNewForm_KeepsStoredTotal(t *testing.T) {
	items := AddOrMergeItem(nil, gown())
	form := NewForm(items, dec("45"), dec("5"))

	assertAmount(t, "45", form.Total)
	assertAmount(t, "40", form.Balance())

	items[0].Quantity = 9
	assert.Equal(t, 1, form.Items[0].Quantity)
}
