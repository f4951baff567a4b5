package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yourusername/longtail-keywords/internal/lib/validate"
)

// MaxKeywords natijadagi kalit so'zlarning maksimal soni
const MaxKeywords = 15

// MinKeywords instruksiyada so'ralgan minimal soni (faqat ogohlantirish uchun)
const MinKeywords = 10

// Provider matn generatsiya xizmati nomi
type Provider string

const (
	ProviderGemini Provider = "Gemini"
	ProviderOpenAI Provider = "OpenAI"
)

// Providers qo'llab-quvvatlanadigan providerlar (ko'rsatish tartibida)
var Providers = []Provider{ProviderGemini, ProviderOpenAI}

// DefaultOpenAIModel OpenAI uchun standart model
const DefaultOpenAIModel = "gpt-4o"

// OpenAIModels tanlash mumkin bo'lgan OpenAI modellari
var OpenAIModels = []string{
	"gpt-4",
	"gpt-4-32k",
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-3.5-turbo",
	"o1",
	"o1-mini",
	"o1-pro",
	"o3",
}

// ParseProvider nomni kanonik Provider ga aylantirish (katta-kichik harf farqsiz)
func ParseProvider(name string) (Provider, error) {
	name = strings.TrimSpace(name)
	for _, p := range Providers {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return Provider(name), &Error{
		Kind:    ErrUnknownProvider,
		Op:      "parse provider",
		Message: "지원하지 않는 LLM 제공자: " + name,
	}
}

// IsReasoningModel o1/o3 oilasidagi modellar temperature parametrini qabul qilmaydi
func IsReasoningModel(model string) bool {
	return strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3")
}

// KeywordRequest kalit so'z generatsiyasi uchun so'rov
type KeywordRequest struct {
	Category string   `validate:"required"`
	Provider Provider `validate:"required"`
	Model    string   `validate:"required_if=Provider OpenAI"`
}

// Normalize bo'sh joylarni olib tashlash va provider nomini kanonik qilish
func (r KeywordRequest) Normalize() KeywordRequest {
	r.Category = strings.TrimSpace(r.Category)
	r.Model = strings.TrimSpace(r.Model)
	if p, err := ParseProvider(string(r.Provider)); err == nil {
		r.Provider = p
	}
	return r
}

// Validate so'rovni tekshirish. Xatolar ErrInvalidInput yoki ErrUnknownProvider turida.
func (r KeywordRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &Error{
				Kind:    ErrInvalidInput,
				Op:      "validate request",
				Message: fieldMessage(verrs[0].Field()),
				Cause:   err,
			}
		}
		return &Error{Kind: ErrInvalidInput, Op: "validate request", Cause: err}
	}
	if _, err := ParseProvider(string(r.Provider)); err != nil {
		return err
	}
	return nil
}

func fieldMessage(field string) string {
	switch field {
	case "Category":
		return "카테고리를 입력해주세요."
	case "Provider":
		return "사용 가능한 LLM 제공자가 없습니다."
	case "Model":
		return "OpenAI 모델을 선택해주세요."
	default:
		return "입력값을 확인해주세요: " + field
	}
}

// KeywordResult generatsiya natijasi
type KeywordResult struct {
	ID        string
	Category  string
	Provider  Provider
	Model     string
	Keywords  []string
	Raw       string // providerdan kelgan xom matn
	CreatedAt time.Time
	Duration  time.Duration
}
