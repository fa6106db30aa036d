package models

type User struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Username     string `json:"username,omitempty"`
	PasswordHash string `json:"-"` // не отдаём наружу
	Birthdate    string `json:"birthdate,omitempty"` // ISO-дата (YYYY-MM-DD), может быть пустой

	// IsAdmin никогда не пишется в БД: признак живёт только в break-glass
	// аккаунте и в сессии. Из списков пользователей всегда приходит false.
	IsAdmin bool `json:"is_admin"`
}

type LoginRequest struct {
	// Login — email или логин (username), различаем на сервере
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
