package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"nsuemschool/internal/models"
)

// Store хранит текущего пользователя сессии в одном JSON-файле.
// Файл читается один раз при создании; битые данные считаются
// отсутствием сессии, а не ошибкой.
type Store struct {
	mu   sync.RWMutex
	path string
	user *models.User
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		log.Printf("[session] файл сессии повреждён, считаем что сессии нет: %v", err)
		return
	}
	s.user = &u
}

// Current возвращает копию текущего пользователя или nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s *Store) Set(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.user = &cp

	data, err := json.Marshal(&cp)
	if err != nil {
		log.Printf("[session] не удалось сериализовать пользователя: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("[session] не удалось создать каталог сессии: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		log.Printf("[session] не удалось записать файл сессии: %v", err)
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Printf("[session] не удалось удалить файл сессии: %v", err)
	}
}
