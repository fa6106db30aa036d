package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nsuemschool/internal/pdf"
	"nsuemschool/internal/services"
)

type ReportHandler struct {
	consultations services.ConsultationService
	generator     pdf.Generator
}

func NewReportHandler(consultations services.ConsultationService, generator pdf.Generator) *ReportHandler {
	return &ReportHandler{consultations: consultations, generator: generator}
}

// @Summary   PDF-отчёт по заявкам
// @Tags      Admin
// @Produce   application/pdf
// @Security  BearerAuth
// @Success   200  {file}  file
// @Router    /admin/reports/consultations [get]
func (h *ReportHandler) ConsultationsPDF(c *gin.Context) {
	requests, err := h.consultations.List()
	if err != nil {
		log.Printf("ConsultationsPDF: list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении заявок"})
		return
	}

	path, err := h.generator.GenerateLeadsReport(requests)
	if err != nil {
		log.Printf("ConsultationsPDF: generate error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при формировании отчета"})
		return
	}

	c.FileAttachment(path, "zayavki.pdf")
}
