package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const tablePayments = "payments"

var paymentColumns = []string{
	"id",
	"booking_id",
	"amount",
	"method",
	"note",
	"received_by",
	"created_at",
	"reversed_at",
}

// Repository репозиторий для работы с платежами по бронированиям
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает новый платёж
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tablePayments).
		Columns(
			"booking_id",
			"amount",
			"method",
			"note",
			"received_by",
		).
		Values(
			payment.BookingID,
			payment.Amount,
			payment.Method,
			payment.Note,
			payment.ReceivedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// GetByID получает платёж по ID в рамках бронирования
func (r *Repository) GetByID(ctx context.Context, bookingID, paymentID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns...).
		From(tablePayments).
		Where(squirrel.Eq{"id": paymentID, "booking_id": bookingID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %w", ErrScanRow, err)
	}

	return payment, nil
}

// ListByBooking получает все платежи бронирования, включая сторнированные
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From(tablePayments).
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %w", ErrScanRow, err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %w", ErrScanRow, err)
	}

	return payments, nil
}

// MarkReversed помечает платёж сторнированным
// Уже сторнированный платёж повторно не обновляется
func (r *Repository) MarkReversed(ctx context.Context, bookingID, paymentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tablePayments).
		Set("reversed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": paymentID, "booking_id": bookingID, "reversed_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReversed - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReversed - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReversed - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var createdAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.Note,
		&payment.ReceivedBy,
		&createdAt,
		&payment.ReversedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.CreatedAt = createdAt.Time

	return &payment, nil
}
