package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// PathID извлекает положительный идентификатор из пути запроса
func PathID(vars map[string]string, key string) (int64, error) {
	id, err := strconv.ParseInt(vars[key], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive, got %d", key, id)
	}
	return id, nil
}

// PathInt извлекает целое число из пути запроса
func PathInt(vars map[string]string, key string) (int, error) {
	v, err := strconv.Atoi(vars[key])
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

// OptionalDate разбирает дату YYYY-MM-DD, пустая строка даёт nil
func OptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// OptionalID разбирает необязательный идентификатор из query
func OptionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// WeekPath извлекает месяц, год и номер недели из пути календаря
func WeekPath(vars map[string]string) (month, year, week int, err error) {
	if month, err = PathInt(vars, "month"); err != nil {
		return 0, 0, 0, err
	}
	if year, err = PathInt(vars, "year"); err != nil {
		return 0, 0, 0, err
	}
	if week, err = PathInt(vars, "week"); err != nil {
		return 0, 0, 0, err
	}
	return month, year, week, nil
}
