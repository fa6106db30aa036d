package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nsuemschool/internal/models"
	"nsuemschool/internal/services"
)

type ContentHandler struct {
	service services.ContentService
}

func NewContentHandler(service services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type contentRequest struct {
	Section  string `json:"section" binding:"required"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// @Summary      Контент публичной страницы
// @Description  Блоки hero / for_whom / mentors и т.д.
// @Tags         Content
// @Produce      json
// @Success      200  {array}  models.SiteContent
// @Router       /content [get]
func (h *ContentHandler) List(c *gin.Context) {
	blocks, err := h.service.List()
	if err != nil {
		log.Printf("ListContent: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении контента"})
		return
	}
	if blocks == nil {
		blocks = []*models.SiteContent{}
	}
	c.JSON(http.StatusOK, blocks)
}

// @Summary   Сохранение блока контента
// @Tags      Admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     content  body      contentRequest  true  "Блок контента"
// @Success   200      {object}  map[string]interface{}
// @Router    /admin/content [put]
func (h *ContentHandler) Save(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block := &models.SiteContent{
		Section:  req.Section,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := h.service.Save(block); err != nil {
		if errors.Is(err, services.ErrEmptySection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Не указана секция"})
			return
		}
		log.Printf("SaveContent: service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при обновлении контента"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Контент обновлен",
		"content": block,
	})
}
