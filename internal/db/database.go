package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func Open(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return conn, nil
}

// EnsureSchema создаёт таблицы при первом запуске. Уникальность email/username
// и section обеспечивается ограничениями БД — это единственный источник истины
// для «уже существует», отдельных проверок чтением перед записью нет.
func EnsureSchema(conn *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			tel TEXT NOT NULL DEFAULT '',
			username TEXT,
			password_hash TEXT NOT NULL,
			birthdate DATE,
			CONSTRAINT users_email_key UNIQUE (email)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key
			ON users (username) WHERE username IS NOT NULL`,
		`CREATE TABLE IF NOT EXISTS consultation_requests (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'На рассмотрении',
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS site_content (
			id SERIAL PRIMARY KEY,
			section TEXT NOT NULL,
			title TEXT,
			content TEXT,
			image_url TEXT,
			CONSTRAINT site_content_section_key UNIQUE (section)
		)`,
	}
	for _, q := range queries {
		if _, err := conn.Exec(q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	log.Printf("Схема БД инициализирована")
	return nil
}
