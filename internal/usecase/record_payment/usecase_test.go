package record_payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
)

type fakeBookingRepo struct {
	booking    *domain.Booking
	gotTotal   decimal.Decimal
	gotDeposit decimal.Decimal
	updated    bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateLedger(_ context.Context, _ int64, total, deposit decimal.Decimal) error {
	f.gotTotal, f.gotDeposit, f.updated = total, deposit, true
	return nil
}

type fakePaymentRepo struct {
	created *domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	p.ID = 42
	f.created = p
	return p, nil
}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	recorded []string
}

func (f *fakeMetrics) PaymentRecorded(method string, amount decimal.Decimal) {
	f.recorded = append(f.recorded, method+":"+amount.StringFixed(2))
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func reservedBooking(total, deposit int64) *domain.Booking {
	return &domain.Booking{
		ID:            1,
		Status:        domain.StatusReserved,
		TotalAmount:   decimal.NewFromInt(total),
		DepositAmount: decimal.NewFromInt(deposit),
	}
}

func request(amount string) *Request {
	return &Request{
		BookingID: 1,
		StaffID:   7,
		Amount:    decimal.RequireFromString(amount),
		Method:    domain.MethodCard,
	}
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name          string
		deposit       int64
		amount        string
		wantDeposit   string
		wantBalance   string
		wantRemaining string
		wantStatus    ledger.PaymentStatus
	}{
		{name: "first partial payment", deposit: 0, amount: "30", wantDeposit: "30", wantBalance: "70", wantRemaining: "70", wantStatus: ledger.StatusPartial},
		{name: "settles balance", deposit: 40, amount: "60", wantDeposit: "100", wantBalance: "0", wantRemaining: "0", wantStatus: ledger.StatusPaid},
		{name: "overpayment clamps preview", deposit: 90, amount: "25", wantDeposit: "115", wantBalance: "-15", wantRemaining: "0", wantStatus: ledger.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: reservedBooking(100, tt.deposit)}
			payments := &fakePaymentRepo{}
			metrics := &fakeMetrics{}
			uc := NewUseCase(repo, payments, fakeTx{}, metrics, nopLogger{})

			resp, err := uc.Execute(context.Background(), request(tt.amount))
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.wantDeposit).Equal(resp.Booking.DepositAmount))
			assert.True(t, decimal.RequireFromString(tt.wantBalance).Equal(resp.Booking.Balance()))
			assert.True(t, decimal.RequireFromString(tt.wantRemaining).Equal(resp.RemainingAfter))
			assert.Equal(t, tt.wantStatus, resp.Booking.PaymentStatus())

			assert.True(t, repo.updated)
			assert.True(t, decimal.RequireFromString(tt.wantDeposit).Equal(repo.gotDeposit))
			assert.True(t, decimal.NewFromInt(100).Equal(repo.gotTotal))
			assert.Equal(t, int64(42), resp.Payment.ID)
			assert.Equal(t, int64(7), payments.created.ReceivedBy)
			assert.Equal(t, []string{"card:" + decimal.RequireFromString(tt.amount).StringFixed(2)}, metrics.recorded)
		})
	}
}

func TestUseCase_Execute_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		req     *Request
		wantErr error
	}{
		{name: "zero amount", booking: reservedBooking(100, 0), req: request("0"), wantErr: ErrInvalidInput},
		{name: "negative amount", booking: reservedBooking(100, 0), req: request("-5"), wantErr: ErrInvalidInput},
		{name: "sub-cent amount", booking: reservedBooking(100, 0), req: request("1.005"), wantErr: ErrInvalidInput},
		{name: "amount in exponent form", booking: reservedBooking(100, 0), req: request("1e5000000"), wantErr: ErrInvalidInput},
		{name: "amount above limit", booking: reservedBooking(100, 0), req: request("10000000000.00"), wantErr: ErrInvalidInput},
		{
			name: "deposit above limit",
			booking: func() *domain.Booking {
				b := reservedBooking(100, 1)
				b.TotalAmount = domain.MaxMoneyAmount
				return b
			}(),
			req:     request(domain.MaxMoneyAmount.String()),
			wantErr: ErrInvalidInput,
		},
		{name: "unknown method", booking: reservedBooking(100, 0), req: &Request{BookingID: 1, Amount: decimal.NewFromInt(5), Method: "barter"}, wantErr: ErrInvalidInput},
		{name: "missing booking", booking: nil, req: request("10"), wantErr: ErrBookingNotFound},
		{name: "already paid", booking: reservedBooking(100, 100), req: request("10"), wantErr: ErrBookingAlreadyPaid},
		{
			name: "cancelled",
			booking: func() *domain.Booking {
				b := reservedBooking(100, 0)
				b.Status = domain.StatusCancelled
				return b
			}(),
			req:     request("10"),
			wantErr: ErrBookingCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: tt.booking}
			payments := &fakePaymentRepo{}
			uc := NewUseCase(repo, payments, fakeTx{}, &fakeMetrics{}, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, payments.created)
			assert.False(t, repo.updated)
		})
	}
}
