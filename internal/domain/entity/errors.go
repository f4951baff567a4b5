package entity

import (
	"context"
	"errors"
	"fmt"
)

// Xatolik turlari
var (
	// ErrConfig API kalit kabi sozlama yo'q
	ErrConfig = errors.New("configuration error")

	// ErrUnavailable provider ushbu build da ro'yxatdan o'tmagan
	ErrUnavailable = errors.New("provider unavailable")

	// ErrInvalidInput foydalanuvchi kiritgan qiymat noto'g'ri
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownProvider noma'lum provider nomi
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrFile shablon yoki katalog fayli topilmadi
	ErrFile = errors.New("file error")

	// ErrBusy oldingi so'rov hali tugamagan
	ErrBusy = errors.New("request already in progress")

	// ErrCanceled so'rov foydalanuvchi tomonidan to'xtatildi
	ErrCanceled = errors.New("request canceled")

	// ErrEmptyCatalog katalogda mahsulot yo'q
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Error turga ega xatolik. errors.Is(err, ErrConfig) kabi tekshirish mumkin.
type Error struct {
	Kind    error
	Op      string
	Message string // foydalanuvchiga ko'rsatiladigan matn
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Title xatolik turi bo'yicha oyna sarlavhasi
func Title(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownProvider):
		return "입력 오류"
	case errors.Is(err, ErrConfig), errors.Is(err, ErrUnavailable):
		return "설정 오류"
	case errors.Is(err, ErrFile):
		return "파일 오류"
	case errors.Is(err, ErrCanceled):
		return "알림"
	default:
		return "오류"
	}
}

// Describe foydalanuvchiga ko'rsatiladigan xabar
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled) {
		return "사용자에 의해 작업이 취소되었습니다."
	}
	if errors.Is(err, ErrBusy) {
		return "이전 요청이 아직 처리 중입니다. 잠시 후 다시 시도해주세요."
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
