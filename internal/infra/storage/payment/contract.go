package payment

import (
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor
