package repository

import "context"

// TemplateSource prompt shablonini o'qish uchun interface
type TemplateSource interface {
	// LoadTemplate shablon matnini olish. Fayl yo'q bo'lsa ErrFile.
	LoadTemplate(ctx context.Context) (string, error)
}
