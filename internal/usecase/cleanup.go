package usecase

import (
	"strings"
	"unicode"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

// CleanKeywords LLM javobini kalit so'zlar ro'yxatiga aylantirish:
// bo'sh va "#" bilan boshlanadigan qatorlar tashlanadi, boshidagi raqam/tinish
// belgilari olib tashlanadi, natija entity.MaxKeywords tagacha qisqartiriladi.
func CleanKeywords(raw string) []string {
	keywords := make([]string, 0, entity.MaxKeywords)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		keyword := strings.TrimSpace(strings.TrimLeftFunc(line, isEnumerationRune))
		if keyword == "" {
			continue
		}

		keywords = append(keywords, keyword)
		if len(keywords) == entity.MaxKeywords {
			break
		}
	}

	return keywords
}

// enumerationRunes "1.", "2)", "- ", "• " kabi raqamlash belgilari.
// Qavs va qo'shtirnoqlar kalit so'zning o'ziga tegishli, ular saqlanadi.
const enumerationRunes = ".)-•*·．）－"

func isEnumerationRune(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(enumerationRunes, r)
}
