package repository

import (
	"context"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

// SessionRepository chat sessiyalari (tanlangan provider, oxirgi kalit so'zlar)
type SessionRepository interface {
	// GetSession sessiyani olish; yo'q bo'lsa standart qiymatlar bilan yangisi
	GetSession(ctx context.Context, chatID int64) (entity.Session, error)

	// SaveSession sessiyani saqlash
	SaveSession(ctx context.Context, session entity.Session) error

	// UpdateSession sessiyani fn orqali atomik o'zgartirish va yangi holatini qaytarish
	UpdateSession(ctx context.Context, chatID int64, fn func(*entity.Session)) (entity.Session, error)

	// ClearSession sessiyani o'chirish
	ClearSession(ctx context.Context, chatID int64) error
}
