package repositories

import (
	"database/sql"
	"log"

	"nsuemschool/internal/models"
)

type ContentRepository interface {
	List() ([]*models.SiteContent, error)
	// Upsert пишет блок по ключу section: вставка при отсутствии,
	// обновление при наличии — одним запросом, без гонки «прочитал-записал».
	Upsert(content *models.SiteContent) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &contentRepository{db: db}
}

func (r *contentRepository) List() ([]*models.SiteContent, error) {
	const query = `SELECT id, section, title, content, image_url FROM site_content ORDER BY section`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SiteContent
	for rows.Next() {
		var c models.SiteContent
		var title, content, imageURL sql.NullString
		if err := rows.Scan(&c.ID, &c.Section, &title, &content, &imageURL); err != nil {
			return nil, err
		}
		c.Title = title.String
		c.Content = content.String
		c.ImageURL = imageURL.String
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *contentRepository) Upsert(content *models.SiteContent) error {
	const query = `
		INSERT INTO site_content (section, title, content, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (section) DO UPDATE
		SET title=EXCLUDED.title, content=EXCLUDED.content, image_url=EXCLUDED.image_url
		RETURNING id
	`
	return r.db.QueryRow(query, content.Section, content.Title, content.Content, content.ImageURL).Scan(&content.ID)
}
