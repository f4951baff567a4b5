package telegram

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

// Telegram xabar chegarasi 4096, zaxira bilan
const maxMessageLength = 4000

const maxButtonLabel = 48

// Callback ma'lumotlari: "kw:<natija tegi>:<indeks>", "cat:<indeks>", "gen"
const (
	actionKeyword  = "kw"
	actionCategory = "cat"
	actionGenerate = "gen"

	callbackGenerate = actionGenerate
)

// Telegram callback_data 64 baytdan oshmasligi kerak
const resultTagLength = 8

type callbackData struct {
	action string
	tag    string
	index  int
}

// resultTag natija ID sining qisqa prefiksi, tugmani o'z natijasiga bog'laydi
func resultTag(resultID string) string {
	if len(resultID) <= resultTagLength {
		return resultID
	}
	return resultID[:resultTagLength]
}

// buildKeywordButtons har bir kalit so'z uchun bitta qatorli tugma
func buildKeywordButtons(resultID string, keywords []string) tgbotapi.InlineKeyboardMarkup {
	tag := resultTag(resultID)
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keywords))
	for i, kw := range keywords {
		btn := tgbotapi.NewInlineKeyboardButtonData(truncateLabel(kw, maxButtonLabel), fmt.Sprintf("%s:%s:%d", actionKeyword, tag, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildCategoryButtons kategoriyalar, har qatorda ikkitadan
func buildCategoryButtons(categories []string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	row := []tgbotapi.InlineKeyboardButton{}

	for i, name := range categories {
		btn := tgbotapi.NewInlineKeyboardButtonData(truncateLabel(name, maxButtonLabel), fmt.Sprintf("%s:%d", actionCategory, i))
		row = append(row, btn)
		if len(row) == 2 {
			rows = append(rows, row)
			row = []tgbotapi.InlineKeyboardButton{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// parseCallback callback ma'lumotini ajratish
func parseCallback(data string) (callbackData, bool) {
	if data == actionGenerate {
		return callbackData{action: actionGenerate}, true
	}

	parts := strings.Split(data, ":")
	var cb callbackData
	var idx string
	switch {
	case parts[0] == actionKeyword && len(parts) == 3 && parts[1] != "":
		cb.action, cb.tag, idx = actionKeyword, parts[1], parts[2]
	case parts[0] == actionCategory && len(parts) == 2:
		cb.action, idx = actionCategory, parts[1]
	default:
		return callbackData{}, false
	}

	index, err := strconv.Atoi(idx)
	if err != nil || index < 0 {
		return callbackData{}, false
	}
	cb.index = index
	return cb, true
}

// requestFor sessiya sozlamalaridan so'rov tuzish. Model faqat OpenAI uchun.
func requestFor(session entity.Session, category string) entity.KeywordRequest {
	req := entity.KeywordRequest{
		Category: category,
		Provider: session.Provider,
	}
	if session.Provider == entity.ProviderOpenAI {
		req.Model = session.Model
	}
	return req
}

func formatKeywords(result *entity.KeywordResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔑 '%s' 롱테일 키워드 %d개", result.Category, len(result.Keywords))
	if result.Model != "" {
		fmt.Fprintf(&sb, " (%s · %s)", result.Provider, result.Model)
	} else {
		fmt.Fprintf(&sb, " (%s)", result.Provider)
	}
	sb.WriteString("\n\n")
	sb.WriteString(bulletList(result.Keywords))
	sb.WriteString("\n\n키워드를 선택하면 프롬프트가 생성됩니다.")
	return sb.String()
}

func formatProviderStatus(session entity.Session, available []entity.Provider) string {
	names := make([]string, 0, len(available))
	for _, p := range available {
		names = append(names, string(p))
	}

	current := string(session.Provider)
	if session.Provider == entity.ProviderOpenAI && session.Model != "" {
		current += " (" + session.Model + ")"
	}

	return fmt.Sprintf("현재 LLM 제공자: %s\n사용 가능: %s\nOpenAI 모델: %s\n\n예: /provider openai gpt-4o-mini",
		current, strings.Join(names, ", "), strings.Join(entity.OpenAIModels, ", "))
}

func containsProvider(list []entity.Provider, p entity.Provider) bool {
	return slices.Contains(list, p)
}

// bulletList "• element" qatorlari
func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

// splitMessage matnni limit belgidan oshmaydigan qismlarga qator bo'yicha bo'lish
func splitMessage(text string, limit int) []string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}

	var parts []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			parts = append(parts, string(current))
			current = current[:0]
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		runes := []rune(line)
		if len(current)+len(runes) > limit {
			flush()
		}
		// bitta qatorning o'zi limitdan uzun
		for len(runes) > limit {
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}
		current = append(current, runes...)
	}
	flush()
	return parts
}

func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
