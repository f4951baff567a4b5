package entity

import "time"

// Session chat bo'yicha joriy tanlovlar (faqat xotirada saqlanadi)
type Session struct {
	ChatID   int64
	Provider Provider
	Model    string
	Category string
	ResultID string // Keywords qaysi KeywordResult dan olingani
	Keywords []string
	LastUsed time.Time
}

// Keyword 0 dan boshlangan indeks bo'yicha kalit so'zni olish
func (s Session) Keyword(index int) (string, bool) {
	if index < 0 || index >= len(s.Keywords) {
		return "", false
	}
	return s.Keywords[index], true
}
