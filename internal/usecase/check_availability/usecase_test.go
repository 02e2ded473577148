package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type fakeBookingRepo struct {
	reserved []int64
	err      error
	from, to time.Time
	exclude  *int64
}

func (f *fakeBookingRepo) GetReservedItemIDs(_ context.Context, from, to time.Time, exclude *int64) ([]int64, error) {
	f.from, f.to, f.exclude = from, to, exclude
	return f.reserved, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute_SingleDay(t *testing.T) {
	repo := &fakeBookingRepo{reserved: []int64{3, 8}}
	uc := NewUseCase(repo, 2, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, day(15), resp.Date)
	assert.Equal(t, day(15), resp.ReturnDate)
	assert.Equal(t, []int64{3, 8}, resp.ReservedItemIDs)
	assert.Equal(t, 2, resp.PrepDays)
	assert.Equal(t, day(13), repo.from)
	assert.Equal(t, day(17), repo.to)
	assert.Nil(t, repo.exclude)
}

func TestUseCase_Execute_PeriodWithExclusion(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, 0, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       day(10),
		ReturnDate: ptr.Ptr(day(12)),
		ExcludeID:  ptr.Ptr(int64(4)),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.ReservedItemIDs)
	assert.Equal(t, day(10), repo.from)
	assert.Equal(t, day(12), repo.to)
	require.NotNil(t, repo.exclude)
	assert.Equal(t, int64(4), *repo.exclude)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, 1, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: day(10), ReturnDate: ptr.Ptr(day(9))})
	assert.ErrorIs(t, err, ErrInvalidDate)

	failing := NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, 1, nopLogger{})
	_, err = failing.Execute(context.Background(), &Request{Date: day(10)})
	assert.ErrorIs(t, err, ErrInternal)
}
