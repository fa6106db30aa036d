package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"nsuemschool/internal/models"
	"nsuemschool/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type addUserRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Username  string `json:"username"`
	Password  string `json:"password" binding:"required,min=6"`
	Birthdate string `json:"birthdate"`
	// is_admin в БД не пишется, но возвращается как есть — админка
	// показывает роль новой записи сразу
	IsAdmin bool `json:"is_admin"`
}

type updateUserRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Username  string `json:"username"`
	Password  string `json:"password"` // пусто — пароль не меняется
	Birthdate string `json:"birthdate"`
}

// @Summary   Список пользователей
// @Tags      Admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  models.User
// @Router    /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		log.Printf("ListUsers: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении пользователей"})
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary   Создание пользователя
// @Tags      Admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     user  body      addUserRequest  true  "Новый пользователь"
// @Success   201   {object}  map[string]interface{}
// @Failure   409   {object}  map[string]string
// @Router    /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req addUserRequest
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
		IsAdmin:   req.IsAdmin,
	}

	created, err := h.service.AddUser(user, req.Password)
	if err != nil {
		if respondDuplicate(c, err) {
			return
		}
		log.Printf("CreateUser: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при добавлении пользователя"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Пользователь добавлен",
		"user":    created,
	})
}

// @Summary   Обновление пользователя
// @Tags      Admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      int                true  "ID пользователя"
// @Param     user  body      updateUserRequest  true  "Поля пользователя"
// @Success   200   {object}  map[string]string
// @Failure   409   {object}  map[string]string
// @Router    /admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:        id,
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Username:  strings.TrimSpace(req.Username),
		Birthdate: req.Birthdate,
	}

	if err := h.service.UpdateUser(user, req.Password); err != nil {
		if respondDuplicate(c, err) {
			return
		}
		log.Printf("UpdateUser: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при обновлении пользователя"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пользователь обновлен"})
}

// @Summary   Удаление пользователя
// @Tags      Admin
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "ID пользователя"
// @Success   200  {object}  map[string]string
// @Router    /admin/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}
	if err := h.service.DeleteUser(id); err != nil {
		log.Printf("DeleteUser: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при удалении пользователя"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Пользователь удален"})
}
