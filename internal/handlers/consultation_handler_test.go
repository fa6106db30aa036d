package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsuemschool/internal/handlers"
	"nsuemschool/internal/models"
)

type stubConsultationService struct {
	created []*models.ConsultationRequest
}

func (s *stubConsultationService) Create(req *models.ConsultationRequest) (*models.ConsultationRequest, error) {
	req.ID = 1
	req.Status = models.StatusPending
	s.created = append(s.created, req)
	return req, nil
}

func (s *stubConsultationService) List() ([]*models.ConsultationRequest, error) { return nil, nil }
func (s *stubConsultationService) Update(req *models.ConsultationRequest) error { return nil }
func (s *stubConsultationService) UpdateStatus(id int, status string) error     { return nil }
func (s *stubConsultationService) Delete(id int) error                          { return nil }

func newConsultationRouter(svc *stubConsultationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewConsultationHandler(svc)
	r.POST("/consultations", h.Create)
	return r
}

func TestCreateConsultationOK(t *testing.T) {
	svc := &stubConsultationService{}
	r := newConsultationRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"full_name": "Иван Иванов",
		"email":     "ivan@test.ru",
		"phone":     "+7 900 000 00 00",
	})
	req := httptest.NewRequest(http.MethodPost, "/consultations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Заявка отправлена")
	require.Len(t, svc.created, 1)
	assert.Equal(t, models.StatusPending, svc.created[0].Status)
}

func TestCreateConsultationMissingFields(t *testing.T) {
	svc := &stubConsultationService{}
	r := newConsultationRouter(svc)

	body, _ := json.Marshal(map[string]string{"full_name": "Иван"})
	req := httptest.NewRequest(http.MethodPost, "/consultations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "заполните все поля")
	assert.Empty(t, svc.created, "сервис не должен вызываться при невалидной форме")
}

func TestCreateConsultationBadEmail(t *testing.T) {
	svc := &stubConsultationService{}
	r := newConsultationRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"full_name": "Иван",
		"email":     "not-an-email",
		"phone":     "+7 900 000 00 00",
	})
	req := httptest.NewRequest(http.MethodPost, "/consultations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.created)
}
