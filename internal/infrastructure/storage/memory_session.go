package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]entity.Session
	defaults entity.Session
	ttl      time.Duration
}

// NewMemorySessionRepository in-memory session repository yaratish.
// ttl dan uzoq ishlatilmagan sessiyalar standart holatga qaytadi (0 - cheksiz).
func NewMemorySessionRepository(provider entity.Provider, model string, ttl time.Duration) repository.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[int64]entity.Session),
		defaults: entity.Session{Provider: provider, Model: model},
		ttl:      ttl,
	}
}

// GetSession sessiyani olish
func (m *memorySessionRepository) GetSession(ctx context.Context, chatID int64) (entity.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current(chatID), nil
}

// current muddati o'tmagan sessiya nusxasi yoki standart qiymatlar. mu ushlangan bo'lishi kerak.
func (m *memorySessionRepository) current(chatID int64) entity.Session {
	session, exists := m.sessions[chatID]
	if !exists || (m.ttl > 0 && time.Since(session.LastUsed) > m.ttl) {
		session = m.defaults
		session.ChatID = chatID
		return session
	}

	session.Keywords = append([]string(nil), session.Keywords...)
	return session
}

// SaveSession sessiyani saqlash
func (m *memorySessionRepository) SaveSession(ctx context.Context, session entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.Keywords = append([]string(nil), session.Keywords...)
	session.LastUsed = time.Now()
	m.sessions[session.ChatID] = session
	return nil
}

// UpdateSession o'qish va yozish bitta lock ostida
func (m *memorySessionRepository) UpdateSession(ctx context.Context, chatID int64, fn func(*entity.Session)) (entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := m.current(chatID)
	fn(&session)
	session.ChatID = chatID
	session.Keywords = append([]string(nil), session.Keywords...)
	session.LastUsed = time.Now()
	m.sessions[chatID] = session

	out := session
	out.Keywords = append([]string(nil), session.Keywords...)
	return out, nil
}

// ClearSession sessiyani o'chirish
func (m *memorySessionRepository) ClearSession(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
	return nil
}
