package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsuemschool/internal/authz"
	"nsuemschool/internal/config"
	"nsuemschool/internal/models"
	"nsuemschool/internal/repositories"
	"nsuemschool/internal/services"
	"nsuemschool/internal/session"
)

// fakeUserRepo имитирует поведение БД с уникальными ограничениями
// на email и username: конфликт — та же ошибка, что дал бы Postgres.
type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int
	calls  int // любые обращения к хранилищу
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) conflict(u *models.User, excludeID int) error {
	for id, existing := range r.users {
		if id == excludeID {
			continue
		}
		if existing.Email == u.Email {
			return repositories.ErrEmailTaken
		}
		if u.Username != "" && existing.Username == u.Username {
			return repositories.ErrUsernameTaken
		}
	}
	return nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.calls++
	if err := r.conflict(u, 0); err != nil {
		return err
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int) (*models.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.calls++
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	r.calls++
	for _, u := range r.users {
		if u.Username != "" && u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.calls++
	if err := r.conflict(u, u.ID); err != nil {
		return err
	}
	if _, ok := r.users[u.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id int) error {
	r.calls++
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List() ([]*models.User, error) {
	r.calls++
	var out []*models.User
	for id := 1; id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newTestUserService(t *testing.T) (services.UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	breakGlass := authz.NewBreakGlass(config.AdminConfig{
		Login:    "admin",
		Password: "supersecret",
		FullName: "Administrator",
		Email:    "admin@nsuem.ru",
		Phone:    "+7 (000) 000-00-00",
	})
	svc := services.NewUserService(repo, services.NewAuthService(), nil, sessions, breakGlass)
	return svc, repo
}

func testUser() *models.User {
	return &models.User{
		FullName: "Иван Иванов",
		Email:    "ivan@test.ru",
		Phone:    "+7 900 000 00 00",
		Username: "ivan",
	}
}

func TestRegisterHappyPath(t *testing.T) {
	svc, repo := newTestUserService(t)

	created, err := svc.Register(testUser(), "x")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.IsAdmin)
	assert.Len(t, repo.users, 1)

	// пароль не хранится открытым текстом
	assert.NotEqual(t, "x", repo.users[created.ID].PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newTestUserService(t)

	_, err := svc.Register(testUser(), "x")
	require.NoError(t, err)

	dup := testUser()
	dup.Username = "other"
	created, err := svc.Register(dup, "y")
	assert.Nil(t, created)
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
	assert.Len(t, repo.users, 1) // вторая строка не записана
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, repo := newTestUserService(t)

	_, err := svc.Register(testUser(), "x")
	require.NoError(t, err)

	dup := testUser()
	dup.Email = "other@test.ru"
	created, err := svc.Register(dup, "y")
	assert.Nil(t, created)
	assert.ErrorIs(t, err, repositories.ErrUsernameTaken)
	assert.Len(t, repo.users, 1)
}

func TestLoginBreakGlassNeverTouchesStore(t *testing.T) {
	svc, repo := newTestUserService(t)

	admin, err := svc.Login("admin", "supersecret")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, authz.BreakGlassID, admin.ID)
	assert.Zero(t, repo.calls, "break-glass вход не должен обращаться к БД")
}

func TestLoginByEmailAndUsername(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(testUser(), "password1")
	require.NoError(t, err)
	svc.Logout()

	byEmail, err := svc.Login("ivan@test.ru", "password1")
	require.NoError(t, err)
	assert.False(t, byEmail.IsAdmin)

	byUsername, err := svc.Login("ivan", "password1")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byUsername.ID)
}

func TestLoginRejectsUnknownAndWrongPassword(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(testUser(), "password1")
	require.NoError(t, err)

	_, err = svc.Login("nobody@test.ru", "password1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login("ivan@test.ru", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestSessionFollowsLoginAndLogout(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register(testUser(), "password1")
	require.NoError(t, err)
	svc.Logout()
	require.Nil(t, svc.Current())

	logged, err := svc.Login("ivan", "password1")
	require.NoError(t, err)
	assert.Equal(t, logged, svc.Current())

	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestUpdateCurrentKeepsOwnEmail(t *testing.T) {
	svc, repo := newTestUserService(t)

	created, err := svc.Register(testUser(), "password1")
	require.NoError(t, err)

	// смена имени при неизменном email не должна давать конфликт уникальности
	upd := *created
	upd.FullName = "Иван Петров"
	require.NoError(t, svc.UpdateCurrent(&upd, ""))

	assert.Equal(t, "Иван Петров", repo.users[created.ID].FullName)
	assert.Equal(t, "Иван Петров", svc.Current().FullName)
}

func TestUpdateCurrentConflictLeavesSessionIntact(t *testing.T) {
	svc, repo := newTestUserService(t)

	first, err := svc.Register(testUser(), "password1")
	require.NoError(t, err)

	second := testUser()
	second.Email = "second@test.ru"
	second.Username = "second"
	_, err = svc.AddUser(second, "password2")
	require.NoError(t, err)

	// пытаемся занять чужой email
	upd := *first
	upd.Email = "second@test.ru"
	err = svc.UpdateCurrent(&upd, "")
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)

	assert.Equal(t, "ivan@test.ru", repo.users[first.ID].Email)
	assert.Equal(t, "ivan@test.ru", svc.Current().Email)
}

func TestUpdateCurrentBreakGlassIsSessionOnly(t *testing.T) {
	svc, repo := newTestUserService(t)

	admin, err := svc.Login("admin", "supersecret")
	require.NoError(t, err)
	before := repo.calls

	upd := *admin
	upd.FullName = "Главный администратор"
	require.NoError(t, svc.UpdateCurrent(&upd, ""))

	assert.Equal(t, before, repo.calls, "для break-glass обновляется только сессия")
	assert.Equal(t, "Главный администратор", svc.Current().FullName)
}

func TestAddUserPreservesIsAdminButListForcesFalse(t *testing.T) {
	svc, _ := newTestUserService(t)

	u := testUser()
	u.IsAdmin = true
	created, err := svc.AddUser(u, "password1")
	require.NoError(t, err)
	// возвращаемая запись сохраняет флаг вызывающего
	assert.True(t, created.IsAdmin)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	// но из хранилища административный статус не выводится никогда
	assert.False(t, users[0].IsAdmin)
}

func TestUpdateUserEmptyPasswordKeepsHash(t *testing.T) {
	svc, repo := newTestUserService(t)

	created, err := svc.AddUser(testUser(), "password1")
	require.NoError(t, err)
	oldHash := repo.users[created.ID].PasswordHash

	upd := *created
	upd.FullName = "Новое Имя"
	require.NoError(t, svc.UpdateUser(&upd, ""))

	assert.Equal(t, oldHash, repo.users[created.ID].PasswordHash)
	assert.Equal(t, "Новое Имя", repo.users[created.ID].FullName)
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newTestUserService(t)

	created, err := svc.AddUser(testUser(), "password1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID))
	assert.Empty(t, repo.users)
}
