package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	gotFilter domain.BookingsFilter
	listErr   error
}

func newFakeRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.RentalStatus) error {
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.bookings[id].Status = domain.StatusCancelled
	f.bookings[id].CancellationReason = &reason
	return nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) ListByBooking(_ context.Context, _ int64) ([]*domain.Payment, error) {
	return f.payments, nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func rental(id int64, status domain.RentalStatus, total, deposit int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Status:        status,
		PickupDate:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.NewFromInt(total),
		DepositAmount: decimal.NewFromInt(deposit),
	}
}

func newService(repo *fakeBookingRepo, payments *fakePaymentRepo) *Service {
	if payments == nil {
		payments = &fakePaymentRepo{}
	}
	return NewService(repo, payments, fakeTx{}, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	svc := newService(newFakeRepo(rental(1, domain.StatusReserved, 100, 20)), nil)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "80.00", resp.RemainingBalance)
	assert.Equal(t, "partial", resp.PaymentStatus)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_List(t *testing.T) {
	repo := newFakeRepo(rental(1, domain.StatusReserved, 100, 0))
	svc := newService(repo, nil)

	start := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		StartDate:  &start,
		EndDate:    &end,
		CategoryID: ptr.Ptr(int64(3)),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, start, *repo.gotFilter.StartDate)
	assert.Equal(t, int64(3), *repo.gotFilter.CategoryID)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{StartDate: &end, EndDate: &start})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListPayments(t *testing.T) {
	payments := &fakePaymentRepo{payments: []*domain.Payment{
		{ID: 1, BookingID: 1, Amount: decimal.NewFromInt(20), Method: domain.MethodCash},
	}}
	svc := newService(newFakeRepo(rental(1, domain.StatusReserved, 100, 20)), payments)

	resp, err := svc.ListPayments(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Payments, 1)
	assert.Equal(t, "20.00", resp.DepositAmount)

	_, err = svc.ListPayments(context.Background(), 9)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_PreviewPayment(t *testing.T) {
	svc := newService(newFakeRepo(rental(1, domain.StatusReserved, 100, 20)), nil)

	tests := []struct {
		amount        string
		wantRemaining string
	}{
		{amount: "30", wantRemaining: "50.00"},
		{amount: "80", wantRemaining: "0.00"},
		{amount: "500", wantRemaining: "0.00"},
	}
	for _, tt := range tests {
		resp, err := svc.PreviewPayment(context.Background(), 1, decimal.RequireFromString(tt.amount))
		require.NoError(t, err)
		assert.Equal(t, tt.wantRemaining, resp.RemainingAfter, tt.amount)
		assert.Equal(t, "80.00", resp.CurrentBalance)
	}

	_, err := svc.PreviewPayment(context.Background(), 1, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_PreviewPayment_RejectsUnsupportedAmounts(t *testing.T) {
	svc := newService(newFakeRepo(rental(1, domain.StatusReserved, 100, 20)), nil)

	for _, amount := range []string{"1e5000000", "-1e5000000", "10000000000", "12.345", "1e-5000000"} {
		resp, err := svc.PreviewPayment(context.Background(), 1, decimal.RequireFromString(amount))
		assert.ErrorIs(t, err, ErrInvalidInput, amount)
		assert.Nil(t, resp, amount)
	}

	resp, err := svc.PreviewPayment(context.Background(), 1, domain.MaxMoneyAmount)
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", resp.Amount)
}

func TestService_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		booking    *domain.Booking
		action     func(s *Service) (*models.BookingResponse, error)
		wantErr    error
		wantStatus string
	}{
		{
			name:    "cancel reserved",
			booking: rental(1, domain.StatusReserved, 100, 0),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: " no longer needed "})
			},
			wantStatus: "cancelled",
		},
		{
			name:    "cancel picked up",
			booking: rental(1, domain.StatusPickedUp, 100, 50),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
			},
			wantErr: ErrCannotCancel,
		},
		{
			name:    "cancel reason too long",
			booking: rental(1, domain.StatusReserved, 100, 0),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1)})
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "pickup partially paid",
			booking: rental(1, domain.StatusReserved, 100, 30),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Pickup(context.Background(), 1, 7)
			},
			wantStatus: "picked_up",
		},
		{
			name:    "pickup unpaid",
			booking: rental(1, domain.StatusReserved, 100, 0),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Pickup(context.Background(), 1, 7)
			},
			wantErr: ErrCannotPickup,
		},
		{
			name:    "return picked up",
			booking: rental(1, domain.StatusPickedUp, 100, 30),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Return(context.Background(), 1, 7)
			},
			wantStatus: "returned",
		},
		{
			name:    "return reserved",
			booking: rental(1, domain.StatusReserved, 100, 100),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Return(context.Background(), 1, 7)
			},
			wantErr: ErrCannotReturn,
		},
		{
			name:    "missing booking",
			booking: rental(2, domain.StatusReserved, 100, 100),
			action: func(s *Service) (*models.BookingResponse, error) {
				return s.Pickup(context.Background(), 1, 7)
			},
			wantErr: ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newFakeRepo(tt.booking), nil)

			resp, err := tt.action(svc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestService_Cancel_TrimsReason(t *testing.T) {
	repo := newFakeRepo(rental(1, domain.StatusReserved, 100, 0))
	svc := newService(repo, nil)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "  wrong size "})
	require.NoError(t, err)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "wrong size", *resp.CancellationReason)
}
