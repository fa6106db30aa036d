package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"nsuemschool/internal/models"
	"nsuemschool/internal/repositories"
)

var ErrInvalidStatus = errors.New("invalid consultation status")

type ConsultationService interface {
	Create(req *models.ConsultationRequest) (*models.ConsultationRequest, error)
	List() ([]*models.ConsultationRequest, error)
	Update(req *models.ConsultationRequest) error
	UpdateStatus(id int, status string) error
	Delete(id int) error
}

type consultationService struct {
	repo       repositories.ConsultationRepository
	notifier   LeadNotifier
	emails     EmailService
	leadsEmail string
}

func NewConsultationService(
	repo repositories.ConsultationRepository,
	notifier LeadNotifier,
	emails EmailService,
	leadsEmail string,
) ConsultationService {
	return &consultationService{
		repo:       repo,
		notifier:   notifier,
		emails:     emails,
		leadsEmail: leadsEmail,
	}
}

func (s *consultationService) Create(req *models.ConsultationRequest) (*models.ConsultationRequest, error) {
	// Входящий статус игнорируем: новая заявка всегда «На рассмотрении».
	req.Status = models.StatusPending
	req.Date = time.Now()

	if err := s.repo.Create(req); err != nil {
		return nil, err
	}

	// Уведомления после записи, сбой уведомления заявку не ломает.
	if s.notifier != nil {
		if err := s.notifier.NotifyNewLead(req); err != nil {
			log.Printf("Create: warning: telegram notification failed: %v", err)
		}
	}
	if s.emails != nil && s.leadsEmail != "" {
		if err := s.emails.SendLeadNotification(s.leadsEmail, req); err != nil {
			log.Printf("Create: warning: lead email to %s failed: %v", s.leadsEmail, err)
		}
	}

	return req, nil
}

func (s *consultationService) List() ([]*models.ConsultationRequest, error) {
	return s.repo.List()
}

func (s *consultationService) Update(req *models.ConsultationRequest) error {
	if !models.IsValidStatus(req.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	return s.repo.Update(req)
}

func (s *consultationService) UpdateStatus(id int, status string) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *consultationService) Delete(id int) error {
	return s.repo.Delete(id)
}
