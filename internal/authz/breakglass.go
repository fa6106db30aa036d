package authz

import (
	"crypto/subtle"

	"nsuemschool/internal/config"
	"nsuemschool/internal/models"
)

// BreakGlassID — идентификатор встроенного администратора.
// В БД такой записи не существует и не может существовать (id всегда > 0).
const BreakGlassID = -1

// BreakGlass — единственная точка входа для встроенного администратора.
// Проверка выполняется до любых обращений к БД; аккаунт задаётся конфигом
// и никогда не создаётся/не удаляется через пользовательские операции.
type BreakGlass struct {
	cfg config.AdminConfig
}

func NewBreakGlass(cfg config.AdminConfig) *BreakGlass {
	return &BreakGlass{cfg: cfg}
}

// Enabled — аккаунт выключен, если логин или пароль не заданы в конфиге.
func (b *BreakGlass) Enabled() bool {
	return b.cfg.Login != "" && b.cfg.Password != ""
}

// Match сверяет пару логин/пароль и возвращает администратора при совпадении.
func (b *BreakGlass) Match(login, password string) *models.User {
	if !b.Enabled() {
		return nil
	}
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(b.cfg.Login)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(b.cfg.Password)) == 1
	if !loginOK || !passOK {
		return nil
	}
	return &models.User{
		ID:       BreakGlassID,
		FullName: b.cfg.FullName,
		Email:    b.cfg.Email,
		Phone:    b.cfg.Phone,
		Username: b.cfg.Login,
		IsAdmin:  true,
	}
}

// IsBreakGlass — признак того, что пользователь — встроенный администратор.
func IsBreakGlass(u *models.User) bool {
	return u != nil && u.ID == BreakGlassID
}
