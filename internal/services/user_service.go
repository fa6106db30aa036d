package services

import (
	"errors"
	"log"
	"strings"

	"nsuemschool/internal/authz"
	"nsuemschool/internal/models"
	"nsuemschool/internal/repositories"
	"nsuemschool/internal/session"
)

// ErrInvalidCredentials — единый нейтральный отказ входа: не раскрываем,
// что именно не совпало (логин, email или пароль).
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService interface {
	Register(user *models.User, password string) (*models.User, error)
	Login(identifier, password string) (*models.User, error)
	Logout()
	Current() *models.User
	UpdateCurrent(user *models.User, password string) error

	ListUsers() ([]*models.User, error)
	AddUser(user *models.User, password string) (*models.User, error)
	UpdateUser(user *models.User, password string) error
	DeleteUser(id int) error
}

type userService struct {
	repo         repositories.UserRepository
	authService  AuthService
	emailService EmailService
	sessions     *session.Store
	breakGlass   *authz.BreakGlass
}

func NewUserService(
	repo repositories.UserRepository,
	authService AuthService,
	emailService EmailService,
	sessions *session.Store,
	breakGlass *authz.BreakGlass,
) UserService {
	return &userService{
		repo:         repo,
		authService:  authService,
		emailService: emailService,
		sessions:     sessions,
		breakGlass:   breakGlass,
	}
}

func (s *userService) Register(user *models.User, password string) (*models.User, error) {
	if strings.TrimSpace(password) == "" {
		return nil, errors.New("password is required")
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.IsAdmin = false

	// Уникальность email/username проверяет сама БД: при конфликте
	// Create вернёт ErrEmailTaken/ErrUsernameTaken и строка не запишется.
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.sessions.Set(user)

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName); err != nil {
			// warn but do not fail registration
			log.Printf("Register: warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

func (s *userService) Login(identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)

	// Break-glass администратор проверяется первым и никогда не ходит в БД.
	if admin := s.breakGlass.Match(identifier, password); admin != nil {
		s.sessions.Set(admin)
		return admin, nil
	}

	user, err := s.repo.GetByEmail(identifier)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("[auth][login] lookup by email failed: %v", err)
		}
		user, err = s.repo.GetByUsername(identifier)
	}
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("[auth][login] lookup by username failed: %v", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.authService.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.IsAdmin = false
	s.sessions.Set(user)
	return user, nil
}

func (s *userService) Logout() {
	s.sessions.Clear()
}

func (s *userService) Current() *models.User {
	return s.sessions.Current()
}

func (s *userService) UpdateCurrent(user *models.User, password string) error {
	// Для break-glass администратора строки в БД нет — обновляем только сессию.
	if authz.IsBreakGlass(user) {
		s.sessions.Set(user)
		return nil
	}

	if err := s.fillPasswordHash(user, password); err != nil {
		return err
	}
	if err := s.repo.Update(user); err != nil {
		// сессию не трогаем: локальная копия остаётся прежней
		return err
	}
	s.sessions.Set(user)
	return nil
}

func (s *userService) ListUsers() ([]*models.User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	// Административный статус из строк БД не выводится никогда.
	for _, u := range users {
		u.IsAdmin = false
	}
	return users, nil
}

// AddUser сохраняет флаг IsAdmin в возвращаемой записи (в БД он не пишется):
// админка помечает свежесозданного администратора сразу, не дожидаясь
// перечитывания списка. См. DESIGN.md.
func (s *userService) AddUser(user *models.User, password string) (*models.User, error) {
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(user *models.User, password string) error {
	if err := s.fillPasswordHash(user, password); err != nil {
		return err
	}
	return s.repo.Update(user)
}

func (s *userService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}

// fillPasswordHash: пустой пароль — оставить прежний хеш; готовый bcrypt-хеш —
// принять как есть; иначе захешировать.
func (s *userService) fillPasswordHash(user *models.User, password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		stored, err := s.repo.GetByID(user.ID)
		if err != nil {
			return err
		}
		user.PasswordHash = stored.PasswordHash
		return nil
	}
	if IsBcryptHash(password) {
		user.PasswordHash = password
		return nil
	}
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}
