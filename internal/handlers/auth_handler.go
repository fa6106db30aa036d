package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"nsuemschool/internal/authz"
	"nsuemschool/internal/middleware"
	"nsuemschool/internal/models"
	"nsuemschool/internal/services"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type registerRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Username  string `json:"username"`
	Password  string `json:"password" binding:"required,min=6"`
	Birthdate string `json:"birthdate"`
}

type profileRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Birthdate string `json:"birthdate"`
}

// @Summary      Регистрация
// @Description  Создаёт аккаунт и сразу открывает сессию
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body      registerRequest  true  "Данные для регистрации"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Username:  strings.TrimSpace(req.Username),
		Birthdate: req.Birthdate,
	}

	created, err := h.userService.Register(user, req.Password)
	if err != nil {
		if respondDuplicate(c, err) {
			return
		}
		log.Printf("[auth][register] service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при регистрации"})
		return
	}

	token, err := issueToken(created)
	if err != nil {
		log.Printf("[auth][register] sign token failed for userID=%d: err=%v", created.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при регистрации"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Регистрация успешна",
		"user":    created,
		"token":   token,
	})
}

// @Summary      Вход в систему
// @Description  Принимает email или логин; причина отказа не раскрывается
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Данные для входа"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	login := strings.TrimSpace(req.Login)
	log.Printf("[auth][login] attempt login=%q", login)

	user, err := h.userService.Login(login, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("[auth][login] unexpected error for login=%q: %v", login, err)
		}
		// нейтральный отказ: не говорим, что именно не совпало
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный логин или пароль"})
		return
	}

	token, err := issueToken(user)
	if err != nil {
		log.Printf("[auth][login] sign token failed for userID=%d: err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при входе"})
		return
	}

	log.Printf("[auth][login] success userID=%d admin=%v took=%s",
		user.ID, user.IsAdmin, time.Since(start).Truncate(time.Millisecond))

	c.JSON(http.StatusOK, gin.H{
		"message": "Вход выполнен успешно",
		"user":    user,
		"token":   token,
	})
}

// @Summary  Выход из системы
// @Tags     Auth
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.userService.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Выход выполнен успешно"})
}

// @Summary   Текущий пользователь
// @Tags      Profile
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  models.User
// @Failure   401  {object}  map[string]string
// @Router    /profile [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.userService.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Сессия не найдена"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary   Обновление профиля
// @Tags      Profile
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     user  body      profileRequest  true  "Поля профиля"
// @Success   200   {object}  map[string]interface{}
// @Failure   400   {object}  map[string]string
// @Failure   409   {object}  map[string]string
// @Router    /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, isAdmin := getUserFromCtx(c)

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:        userID,
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Username:  strings.TrimSpace(req.Username),
		Birthdate: req.Birthdate,
		IsAdmin:   isAdmin && userID == authz.BreakGlassID,
	}

	if err := h.userService.UpdateCurrent(user, req.Password); err != nil {
		if respondDuplicate(c, err) {
			return
		}
		log.Printf("UpdateProfile: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при обновлении профиля"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Профиль обновлен",
		"user":    user,
	})
}

func issueToken(user *models.User) (string, error) {
	claims := &middleware.Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTKey())
}
