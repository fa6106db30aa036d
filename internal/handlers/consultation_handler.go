package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nsuemschool/internal/models"
	"nsuemschool/internal/services"
)

type ConsultationHandler struct {
	service services.ConsultationService
}

func NewConsultationHandler(service services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

type consultationRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
}

type updateConsultationRequest struct {
	FullName string    `json:"full_name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Phone    string    `json:"phone" binding:"required"`
	Status   string    `json:"status" binding:"required"`
	Date     time.Time `json:"date"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Заявка на консультацию
// @Description  Публичная форма лендинга; новая заявка всегда «На рассмотрении»
// @Tags         Consultations
// @Accept       json
// @Produce      json
// @Param        request  body      consultationRequest  true  "Контакты"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Router       /consultations [post]
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req consultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пожалуйста, заполните все поля формы"})
		return
	}

	created, err := h.service.Create(&models.ConsultationRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		log.Printf("CreateConsultation: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при отправке заявки. Пожалуйста, попробуйте еще раз."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Заявка отправлена. Мы скоро свяжемся с вами!",
		"request": created,
	})
}

// @Summary   Список заявок
// @Tags      Admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  models.ConsultationRequest
// @Router    /admin/consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	requests, err := h.service.List()
	if err != nil {
		log.Printf("ListConsultations: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении заявок"})
		return
	}
	if requests == nil {
		requests = []*models.ConsultationRequest{}
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary   Обновление заявки
// @Tags      Admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id       path      int                        true  "ID заявки"
// @Param     request  body      updateConsultationRequest  true  "Поля заявки"
// @Success   200      {object}  map[string]string
// @Router    /admin/consultations/{id} [put]
func (h *ConsultationHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID заявки"})
		return
	}

	var req updateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.service.Update(&models.ConsultationRequest{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   req.Status,
		Date:     req.Date,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Недопустимый статус заявки"})
			return
		}
		log.Printf("UpdateConsultation: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при обновлении заявки"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Заявка обновлена"})
}

// @Summary   Смена статуса заявки
// @Tags      Admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id      path      int            true  "ID заявки"
// @Param     status  body      statusRequest  true  "Новый статус"
// @Success   200     {object}  map[string]string
// @Router    /admin/consultations/{id}/status [put]
func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID заявки"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Недопустимый статус заявки"})
			return
		}
		log.Printf("UpdateConsultationStatus: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при обновлении статуса заявки"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Статус заявки обновлен"})
}

// @Summary   Удаление заявки
// @Tags      Admin
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  int  true  "ID заявки"
// @Success   200  {object}  map[string]string
// @Router    /admin/consultations/{id} [delete]
func (h *ConsultationHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID заявки"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		log.Printf("DeleteConsultation: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при удалении заявки"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Заявка удалена"})
}
