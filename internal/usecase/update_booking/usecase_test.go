package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/integrations/catalog"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking     *domain.Booking
	reserved    []int64
	excludedID  *int64
	updated     *domain.Booking
	storedItems []ledger.LineItem
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetReservedItemIDs(_ context.Context, _, _ time.Time, excludeBookingID *int64) ([]int64, error) {
	f.excludedID = excludeBookingID
	return f.reserved, nil
}

func (f *fakeBookingRepo) UpdateDetails(_ context.Context, b *domain.Booking) error {
	f.updated = b
	return nil
}

func (f *fakeBookingRepo) ReplaceItems(_ context.Context, _ int64, items []ledger.LineItem) error {
	f.storedItems = items
	return nil
}

type fakeCatalog struct {
	items     map[int64]*catalog.Item
	requested []int64
}

func (f *fakeCatalog) GetItems(_ context.Context, ids []int64) (map[int64]*catalog.Item, error) {
	f.requested = ids
	result := make(map[int64]*catalog.Item)
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			result[id] = item
		}
	}
	return result, nil
}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         5,
		Status:     domain.StatusReserved,
		PickupDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Items: []ledger.LineItem{
			{ItemID: 10, CategoryID: 1, Name: "Gown", UnitPrice: decimal.NewFromInt(45), Quantity: 1},
		},
		TotalAmount:   decimal.NewFromInt(45),
		DepositAmount: decimal.NewFromInt(20),
	}
}

func newUseCase(repo *fakeBookingRepo, cat *fakeCatalog) *UseCase {
	return NewUseCase(repo, cat, fakeTx{}, 1, nopLogger{})
}

func baseRequest() *Request {
	return &Request{
		BookingID:  5,
		StaffID:    7,
		PickupDate: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
		Items:      []ItemRequest{{ItemID: 10, Quantity: 2}, {ItemID: 20, Quantity: 1}},
		Notes:      ptr.Ptr("hem the sleeves"),
	}
}

func TestUseCase_Execute_KeepsSnapshotPriceAndAddsNewItems(t *testing.T) {
	repo := &fakeBookingRepo{booking: existingBooking()}
	cat := &fakeCatalog{items: map[int64]*catalog.Item{
		10: {ID: 10, Name: "Gown", Price: decimal.NewFromInt(60)},
		20: {ID: 20, CategoryID: 2, Name: "Veil", Price: decimal.RequireFromString("12.50")},
	}}

	resp, err := newUseCase(repo, cat).Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, []int64{20}, cat.requested)

	b := resp.Booking
	require.Len(t, b.Items, 2)
	assert.True(t, decimal.NewFromInt(45).Equal(b.Items[0].UnitPrice))
	assert.Equal(t, 2, b.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("102.50").Equal(b.TotalAmount))
	assert.True(t, decimal.RequireFromString("82.50").Equal(b.Balance()))
	assert.Equal(t, ledger.StatusPartial, b.PaymentStatus())
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), b.PickupDate)

	require.NotNil(t, repo.excludedID)
	assert.Equal(t, int64(5), *repo.excludedID)
	assert.Equal(t, b.Items, repo.storedItems)
	assert.Equal(t, "hem the sleeves", *repo.updated.Notes)
}

func TestUseCase_Execute_NoItemsKeepsTotal(t *testing.T) {
	t.Run("previous total", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: existingBooking()}
		req := baseRequest()
		req.Items = nil

		resp, err := newUseCase(repo, &fakeCatalog{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, resp.Booking.Items)
		assert.True(t, decimal.NewFromInt(45).Equal(resp.Booking.TotalAmount))
	})

	t.Run("manual total", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: existingBooking()}
		req := baseRequest()
		req.Items = nil
		req.TotalAmount = ptr.Ptr(decimal.NewFromInt(70))

		resp, err := newUseCase(repo, &fakeCatalog{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(70).Equal(resp.Booking.TotalAmount))
	})
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *fakeBookingRepo, req *Request)
		wantErr error
	}{
		{name: "not found", setup: func(_ *fakeBookingRepo, r *Request) { r.BookingID = 6 }, wantErr: ErrBookingNotFound},
		{name: "picked up", setup: func(repo *fakeBookingRepo, _ *Request) { repo.booking.Status = domain.StatusPickedUp }, wantErr: ErrBookingNotEditable},
		{name: "cancelled", setup: func(repo *fakeBookingRepo, _ *Request) { repo.booking.Status = domain.StatusCancelled }, wantErr: ErrBookingNotEditable},
		{name: "reserved elsewhere", setup: func(repo *fakeBookingRepo, _ *Request) { repo.reserved = []int64{20} }, wantErr: ErrItemsNotAvailable},
		{name: "unknown item", setup: func(_ *fakeBookingRepo, r *Request) { r.Items = append(r.Items, ItemRequest{ItemID: 99, Quantity: 1}) }, wantErr: ErrItemNotFound},
		{name: "inverted dates", setup: func(_ *fakeBookingRepo, r *Request) { r.ReturnDate = r.PickupDate.AddDate(0, 0, -2) }, wantErr: ErrInvalidDates},
		{name: "negative total", setup: func(_ *fakeBookingRepo, r *Request) { r.TotalAmount = ptr.Ptr(decimal.NewFromInt(-1)) }, wantErr: ErrInvalidInput},
		{name: "total with fractional cents", setup: func(_ *fakeBookingRepo, r *Request) { r.TotalAmount = ptr.Ptr(decimal.RequireFromString("10.005")) }, wantErr: ErrInvalidInput},
		{name: "total in exponent form", setup: func(_ *fakeBookingRepo, r *Request) { r.TotalAmount = ptr.Ptr(decimal.RequireFromString("1e5000000")) }, wantErr: ErrInvalidInput},
		{name: "total above limit", setup: func(_ *fakeBookingRepo, r *Request) { r.TotalAmount = ptr.Ptr(decimal.RequireFromString("10000000000.00")) }, wantErr: ErrInvalidInput},
		{name: "computed total above limit", setup: func(repo *fakeBookingRepo, _ *Request) { repo.booking.Items[0].UnitPrice = domain.MaxMoneyAmount }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: existingBooking()}
			cat := &fakeCatalog{items: map[int64]*catalog.Item{
				20: {ID: 20, Name: "Veil", Price: decimal.NewFromInt(12)},
			}}
			req := baseRequest()
			tt.setup(repo, req)

			_, err := newUseCase(repo, cat).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.updated)
		})
	}
}
