package repositories

import (
	"database/sql"
	"log"
	"time"

	"nsuemschool/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
	List() ([]*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &userRepository{DB: db}
}

const userColumns = `id, full_name, email, tel, username, password_hash, birthdate`

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (full_name, email, tel, username, password_hash, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRow(q,
		user.FullName,
		user.Email,
		user.Phone,
		nullIfEmpty(user.Username),
		user.PasswordHash,
		nullDate(user.Birthdate),
	).Scan(&user.ID)
	return mapUniqueViolation(err)
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.DB.QueryRow(q, email))
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.DB.QueryRow(q, username))
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET full_name=$1, email=$2, tel=$3, username=$4, password_hash=$5, birthdate=$6
		WHERE id=$7
	`
	_, err := r.DB.Exec(q,
		user.FullName,
		user.Email,
		user.Phone,
		nullIfEmpty(user.Username),
		user.PasswordHash,
		nullDate(user.Birthdate),
		user.ID,
	)
	return mapUniqueViolation(err)
}

func (r *userRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=$1`, id)
	return err
}

func (r *userRepository) List() ([]*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *userRepository) scanUser(row rowScanner) (*models.User, error) {
	u, err := scanUserRow(row)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

func scanUserRow(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var (
		username  sql.NullString
		birthdate sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &username, &u.PasswordHash, &birthdate); err != nil {
		return nil, err
	}
	if username.Valid {
		u.Username = username.String
	}
	if birthdate.Valid {
		u.Birthdate = birthdate.Time.Format("2006-01-02")
	}
	return u, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullDate(s string) interface{} {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return nil
}
