package entity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind only",
			err:      &Error{Kind: ErrFile},
			expected: "file error",
		},
		{
			name:     "op and message",
			err:      &Error{Kind: ErrConfig, Op: "gemini", Message: "GEMINI_API_KEY is not set"},
			expected: "gemini: GEMINI_API_KEY is not set",
		},
		{
			name:     "with cause",
			err:      &Error{Kind: ErrFile, Op: "read template", Cause: errors.New("no such file")},
			expected: "read template: file error: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorUnwrapMatchesKindAndCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := fmt.Errorf("generate: %w", &Error{Kind: ErrConfig, Cause: cause})

	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrFile)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "입력 오류", Title(&Error{Kind: ErrInvalidInput}))
	assert.Equal(t, "입력 오류", Title(&Error{Kind: ErrUnknownProvider}))
	assert.Equal(t, "설정 오류", Title(&Error{Kind: ErrConfig}))
	assert.Equal(t, "설정 오류", Title(&Error{Kind: ErrUnavailable}))
	assert.Equal(t, "파일 오류", Title(&Error{Kind: ErrFile}))
	assert.Equal(t, "알림", Title(ErrCanceled))
	assert.Equal(t, "오류", Title(errors.New("500 internal")))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
	assert.Equal(t, "사용자에 의해 작업이 취소되었습니다.", Describe(context.Canceled))
	assert.Equal(t, "사용자에 의해 작업이 취소되었습니다.", Describe(&Error{Kind: ErrCanceled, Cause: context.Canceled}))
	assert.Equal(t, "카테고리를 입력해주세요.", Describe(&Error{Kind: ErrInvalidInput, Message: "카테고리를 입력해주세요."}))
	assert.Equal(t, "rate limited", Describe(errors.New("rate limited")))
}
