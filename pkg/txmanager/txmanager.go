// Package txmanager управляет транзакциями, передавая их через context
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
)

const (
	// DefaultSerializableRetries количество повторов при конфликте сериализации
	DefaultSerializableRetries = 3

	// pqSerializationFailure код ошибки PostgreSQL "could not serialize access"
	pqSerializationFailure = "40001"
)

var (
	// ErrBeginTx возвращается, если транзакцию не удалось начать
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, если транзакцию не удалось зафиксировать
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Manager менеджер транзакций
type Manager struct {
	db      TxBeginner
	metrics *metrics.Metrics
	retries int
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *Manager {
	return &Manager{
		db:      db,
		metrics: db.Metrics(),
		retries: DefaultSerializableRetries,
	}
}

// New создает менеджер поверх произвольного источника транзакций
func New(db TxBeginner, retries int) *Manager {
	return &Manager{db: db, retries: retries}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// При конфликте сериализации транзакция повторяется до retries раз
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= m.retries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}

// IsSerializationFailure проверяет, что ошибка - конфликт сериализации PostgreSQL
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqSerializationFailure
	}
	return false
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			m.observe(opts, "panic")
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		m.observe(opts, "rollback")
		return err
	}

	if err = tx.Commit(); err != nil {
		m.observe(opts, "commit_error")
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	m.observe(opts, "commit")
	return nil
}

func (m *Manager) observe(opts *sql.TxOptions, status string) {
	if m.metrics == nil {
		return
	}
	m.metrics.DBTransactionsTotal.WithLabelValues(opts.Isolation.String(), status).Inc()
}
