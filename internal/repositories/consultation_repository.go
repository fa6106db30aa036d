package repositories

import (
	"database/sql"
	"log"

	"nsuemschool/internal/models"
)

type ConsultationRepository interface {
	Create(req *models.ConsultationRequest) error
	GetByID(id int) (*models.ConsultationRequest, error)
	Update(req *models.ConsultationRequest) error
	UpdateStatus(id int, status string) error
	Delete(id int) error
	List() ([]*models.ConsultationRequest, error)
}

type consultationRepository struct {
	db *sql.DB
}

func NewConsultationRepository(db *sql.DB) ConsultationRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(req *models.ConsultationRequest) error {
	const query = `
		INSERT INTO consultation_requests (full_name, email, phone, status, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(query, req.FullName, req.Email, req.Phone, req.Status, req.Date).Scan(&req.ID)
}

func (r *consultationRepository) GetByID(id int) (*models.ConsultationRequest, error) {
	const query = `
		SELECT id, full_name, email, phone, status, date
		FROM consultation_requests
		WHERE id=$1
	`
	row := r.db.QueryRow(query, id)
	req := &models.ConsultationRequest{}
	if err := row.Scan(&req.ID, &req.FullName, &req.Email, &req.Phone, &req.Status, &req.Date); err != nil {
		return nil, mapNotFound(err)
	}
	return req, nil
}

func (r *consultationRepository) Update(req *models.ConsultationRequest) error {
	const query = `
		UPDATE consultation_requests
		SET full_name=$1, email=$2, phone=$3, status=$4, date=$5
		WHERE id=$6
	`
	_, err := r.db.Exec(query, req.FullName, req.Email, req.Phone, req.Status, req.Date, req.ID)
	return err
}

func (r *consultationRepository) UpdateStatus(id int, status string) error {
	const query = `UPDATE consultation_requests SET status=$1 WHERE id=$2`
	_, err := r.db.Exec(query, status, id)
	return err
}

func (r *consultationRepository) Delete(id int) error {
	const query = `DELETE FROM consultation_requests WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

// List — заявки, свежие сверху (как в админке)
func (r *consultationRepository) List() ([]*models.ConsultationRequest, error) {
	const query = `
		SELECT id, full_name, email, phone, status, date
		FROM consultation_requests
		ORDER BY date DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ConsultationRequest
	for rows.Next() {
		var req models.ConsultationRequest
		if err := rows.Scan(&req.ID, &req.FullName, &req.Email, &req.Phone, &req.Status, &req.Date); err != nil {
			return nil, err
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}
