package repository

import (
	"context"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

// TextGenerator matn generatsiya qiluvchi provider uchun interface
type TextGenerator interface {
	// Provider qaysi provider ekanini qaytarish
	Provider() entity.Provider

	// Model so'rovlarda ishlatiladigan model nomi
	Model() string

	// Generate bitta sinxron so'rov yuborib xom javob matnini olish
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory provider va model bo'yicha TextGenerator olish
type GeneratorFactory interface {
	// Generator provider uchun client yaratish. API kalit yo'q bo'lsa ErrConfig,
	// provider ro'yxatdan o'tmagan bo'lsa ErrUnavailable qaytaradi.
	Generator(ctx context.Context, provider entity.Provider, model string) (TextGenerator, error)

	// Available ro'yxatdan o'tgan providerlar
	Available() []entity.Provider
}
