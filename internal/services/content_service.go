package services

import (
	"errors"
	"strings"

	"nsuemschool/internal/models"
	"nsuemschool/internal/repositories"
)

var ErrEmptySection = errors.New("section is required")

type ContentService interface {
	List() ([]*models.SiteContent, error)
	Save(content *models.SiteContent) error
}

type contentService struct {
	repo repositories.ContentRepository
}

func NewContentService(repo repositories.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) List() ([]*models.SiteContent, error) {
	return s.repo.List()
}

// Save — апсерт по section: правка существующего блока или создание нового.
func (s *contentService) Save(content *models.SiteContent) error {
	if strings.TrimSpace(content.Section) == "" {
		return ErrEmptySection
	}
	return s.repo.Upsert(content)
}
