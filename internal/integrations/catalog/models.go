package catalog

import "github.com/shopspring/decimal"

// Item модель вещи или аксессуара из каталога
type Item struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"` // Цена проката, строкой или числом
	IsActive   bool            `json:"is_active"`
}

// ErrorResponse модель ошибки от сервиса каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
