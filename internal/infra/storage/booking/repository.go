package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/ledger"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const (
	tableBookings = "bookings"
	tableItems    = "booking_items"
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"customer_name",
	"pickup_date",
	"return_date",
	"status",
	"total_amount",
	"deposit_amount",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"picked_up_at",
	"returned_at",
	"created_by",
	"created_at",
	"updated_at",
}

var itemColumns = []string{
	"booking_id",
	"item_id",
	"category_id",
	"name",
	"unit_price",
	"quantity",
}

// Repository репозиторий для работы с бронированиями и их позициями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с позициями
// Вызывать внутри транзакции: бронирование и позиции пишутся разными запросами
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"customer_id",
			"customer_name",
			"pickup_date",
			"return_date",
			"status",
			"total_amount",
			"deposit_amount",
			"notes",
			"created_by",
		).
		Values(
			booking.CustomerID,
			booking.CustomerName,
			booking.PickupDate,
			booking.ReturnDate,
			booking.Status,
			booking.TotalAmount,
			booking.DepositAmount,
			booking.Notes,
			booking.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertItems(ctx, executor, booking.ID, booking.Items); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByID получает бронирование с позициями
// Внутри транзакции строка бронирования блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	itemsByBooking, err := r.loadItems(ctx, executor, []int64{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Items = itemsByBooking[booking.ID]

	return booking, nil
}

// List получает бронирования по фильтру
// Период фильтра пересекается с периодом проката [pickup_date, return_date]
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("pickup_date ASC", "id ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"return_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"pickup_date": *filter.EndDate})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.CategoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM booking_items bi WHERE bi.booking_id = bookings.id AND bi.category_id = ?)",
			*filter.CategoryID,
		))
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	if len(bookings) == 0 {
		return bookings, nil
	}

	ids := make([]int64, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	itemsByBooking, err := r.loadItems(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Items = itemsByBooking[b.ID]
	}

	return bookings, nil
}

// UpdateDetails обновляет даты, заметки и итоговую сумму бронирования
func (r *Repository) UpdateDetails(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Update(tableBookings).
		Set("pickup_date", booking.PickupDate).
		Set("return_date", booking.ReturnDate).
		Set("notes", booking.Notes).
		Set("total_amount", booking.TotalAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "UpdateDetails", query, args)
}

// ReplaceItems заменяет позиции бронирования
func (r *Repository) ReplaceItems(ctx context.Context, bookingID int64, items []ledger.LineItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableItems).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceItems - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceItems - execute delete: %w", ErrExecQuery, err)
	}

	return r.insertItems(ctx, executor, bookingID, items)
}

// UpdateLedger сохраняет итоговую сумму и внесённый депозит
// Остаток и статус оплаты не хранятся, они вычисляются при чтении
func (r *Repository) UpdateLedger(ctx context.Context, id int64, total, deposit decimal.Decimal) error {
	query, args, err := psqlbuilder.Update(tableBookings).
		Set("total_amount", total).
		Set("deposit_amount", deposit).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLedger - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "UpdateLedger", query, args)
}

// UpdateStatus переводит бронирование в новый статус проката
// Для picked_up и returned проставляется время события
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	switch status {
	case domain.StatusPickedUp:
		updateBuilder = updateBuilder.Set("picked_up_at", squirrel.Expr("NOW()"))
	case domain.StatusReturned:
		updateBuilder = updateBuilder.Set("returned_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Cancel", query, args)
}

// GetReservedItemIDs возвращает ID вещей, занятых активными бронированиями в периоде [from, to]
// Границы уже должны учитывать дни подготовки
func (r *Repository) GetReservedItemIDs(ctx context.Context, from, to time.Time, excludeBookingID *int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("DISTINCT bi.item_id").
		From("booking_items bi").
		Join("bookings b ON b.id = bi.booking_id").
		Where(squirrel.Eq{"b.status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.LtOrEq{"b.pickup_date": to}).
		Where(squirrel.GtOrEq{"b.return_date": from}).
		OrderBy("bi.item_id ASC")

	if excludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeBookingID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedItemIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedItemIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	itemIDs := make([]int64, 0)
	for rows.Next() {
		var itemID int64
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("%w: GetReservedItemIDs - scan item_id: %w", ErrScanRow, err)
		}
		itemIDs = append(itemIDs, itemID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservedItemIDs - rows error: %w", ErrScanRow, err)
	}

	return itemIDs, nil
}

func (r *Repository) insertItems(ctx context.Context, executor DBExecutor, bookingID int64, items []ledger.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(tableItems).Columns(append(itemColumns, "position")...)
	for i, item := range items {
		insertBuilder = insertBuilder.Values(
			bookingID,
			item.ItemID,
			item.CategoryID,
			item.Name,
			item.UnitPrice,
			item.Quantity,
			i,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertItems - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertItems - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// loadItems загружает позиции для набора бронирований в порядке добавления
func (r *Repository) loadItems(ctx context.Context, executor DBExecutor, bookingIDs []int64) (map[int64][]ledger.LineItem, error) {
	query, args, err := psqlbuilder.Select(itemColumns...).
		From(tableItems).
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadItems - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadItems - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]ledger.LineItem, len(bookingIDs))
	for rows.Next() {
		var (
			bookingID int64
			item      ledger.LineItem
		)
		if err := rows.Scan(
			&bookingID,
			&item.ItemID,
			&item.CategoryID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("%w: loadItems - scan row: %w", ErrScanRow, err)
		}
		result[bookingID] = append(result[bookingID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadItems - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, op string, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.CustomerName,
		&booking.PickupDate,
		&booking.ReturnDate,
		&booking.Status,
		&booking.TotalAmount,
		&booking.DepositAmount,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.PickedUpAt,
		&booking.ReturnedAt,
		&booking.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	booking.Items = []ledger.LineItem{}

	return &booking, nil
}

func statusStrings(statuses []domain.RentalStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
