package check_availability

import "time"

// Request модель запроса проверки доступности вещей
type Request struct {
	Date       time.Time  // Дата выдачи
	ReturnDate *time.Time // Дата возврата; если не задана, проверяется один день
	ExcludeID  *int64     // Бронирование, которое не учитывается (при редактировании)
}

// Response модель ответа с занятыми вещами
type Response struct {
	Date            time.Time
	ReturnDate      time.Time
	ReservedItemIDs []int64
	PrepDays        int // Дни подготовки, учтённые в проверке
}
