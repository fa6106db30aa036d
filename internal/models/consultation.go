package models

import "time"

// Статусы заявки на консультацию. Значения — часть продуктового контракта,
// фронт показывает их как есть.
const (
	StatusPending  = "На рассмотрении"
	StatusAccepted = "Принят"
	StatusRejected = "Отклонен"
)

func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

type ConsultationRequest struct {
	ID       int       `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}
