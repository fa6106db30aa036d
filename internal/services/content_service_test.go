package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsuemschool/internal/models"
	"nsuemschool/internal/services"
)

// fakeContentRepo повторяет контракт Upsert: вставка либо обновление по section.
type fakeContentRepo struct {
	rows   map[string]*models.SiteContent
	nextID int
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{rows: map[string]*models.SiteContent{}, nextID: 1}
}

func (r *fakeContentRepo) List() ([]*models.SiteContent, error) {
	var out []*models.SiteContent
	for _, c := range r.rows {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeContentRepo) Upsert(content *models.SiteContent) error {
	if existing, ok := r.rows[content.Section]; ok {
		content.ID = existing.ID
	} else {
		content.ID = r.nextID
		r.nextID++
	}
	cp := *content
	r.rows[content.Section] = &cp
	return nil
}

func TestSaveUpsertsBySection(t *testing.T) {
	repo := newFakeContentRepo()
	svc := services.NewContentService(repo)

	require.NoError(t, svc.Save(&models.SiteContent{
		Section: "hero",
		Title:   "Школа программирования",
		Content: "Первый вариант",
	}))
	require.NoError(t, svc.Save(&models.SiteContent{
		Section: "hero",
		Title:   "Школа программирования НГУЭУ",
		Content: "Второй вариант",
	}))

	// на секцию ровно одна строка, со значениями второго вызова
	require.Len(t, repo.rows, 1)
	got := repo.rows["hero"]
	assert.Equal(t, "Школа программирования НГУЭУ", got.Title)
	assert.Equal(t, "Второй вариант", got.Content)
}

func TestSaveRequiresSection(t *testing.T) {
	svc := services.NewContentService(newFakeContentRepo())

	err := svc.Save(&models.SiteContent{Section: "  "})
	assert.ErrorIs(t, err, services.ErrEmptySection)
}

func TestListContent(t *testing.T) {
	repo := newFakeContentRepo()
	svc := services.NewContentService(repo)

	require.NoError(t, svc.Save(&models.SiteContent{Section: "hero", Title: "Заголовок"}))
	require.NoError(t, svc.Save(&models.SiteContent{Section: "for_whom"}))

	out, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
