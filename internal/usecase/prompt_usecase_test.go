package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/lib/logger"
)

type fakeTemplateSource struct {
	text  string
	err   error
	calls int
}

func (f *fakeTemplateSource) LoadTemplate(ctx context.Context) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestPromptUseCase_Materialize(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		placeholder string
		keyword     string
		expected    string
	}{
		{
			name:     "single placeholder",
			template: "키워드: {keyword}\n블로그 글을 작성해주세요.",
			keyword:  "아기방 공기청정기 저소음 추천",
			expected: "키워드: 아기방 공기청정기 저소음 추천\n블로그 글을 작성해주세요.",
		},
		{
			name:     "every occurrence replaced",
			template: "{keyword} / {keyword}",
			keyword:  "텐트",
			expected: "텐트 / 텐트",
		},
		{
			name:     "no placeholder",
			template: "고정된 프롬프트",
			keyword:  "텐트",
			expected: "고정된 프롬프트",
		},
		{
			name:        "custom placeholder",
			template:    "주제: [[KW]] ({keyword} 그대로)",
			placeholder: "[[KW]]",
			keyword:     "캠핑 의자",
			expected:    "주제: 캠핑 의자 ({keyword} 그대로)",
		},
		{
			name:     "keyword with regexp characters",
			template: "<{keyword}>",
			keyword:  "$1 (특가) .*",
			expected: "<$1 (특가) .*>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewPromptUseCase(&fakeTemplateSource{text: tt.template}, tt.placeholder, logger.Discard())
			got, err := uc.Materialize(context.Background(), tt.keyword)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPromptUseCase_ReadsTemplateEveryCall(t *testing.T) {
	src := &fakeTemplateSource{text: "A {keyword}"}
	uc := NewPromptUseCase(src, "", logger.Discard())

	first, err := uc.Materialize(context.Background(), "x")
	require.NoError(t, err)

	src.text = "B {keyword}"
	second, err := uc.Materialize(context.Background(), "x")
	require.NoError(t, err)

	assert.Equal(t, "A x", first)
	assert.Equal(t, "B x", second)
	assert.Equal(t, 2, src.calls)
}

func TestPromptUseCase_Errors(t *testing.T) {
	t.Run("empty keyword", func(t *testing.T) {
		src := &fakeTemplateSource{text: "{keyword}"}
		uc := NewPromptUseCase(src, "", logger.Discard())

		_, err := uc.Materialize(context.Background(), "  ")
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrInvalidInput)
		assert.Equal(t, "키워드를 선택해주세요.", entity.Describe(err))
		assert.Zero(t, src.calls)
	})

	t.Run("missing file", func(t *testing.T) {
		fileErr := &entity.Error{Kind: entity.ErrFile, Message: "프롬프트 템플릿 파일을 찾을 수 없습니다: x.txt"}
		uc := NewPromptUseCase(&fakeTemplateSource{err: fileErr}, "", logger.Discard())

		_, err := uc.Materialize(context.Background(), "텐트")
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrFile)
		assert.Equal(t, "파일 오류", entity.Title(err))
	})

	t.Run("other failure", func(t *testing.T) {
		ioErr := errors.New("permission denied")
		uc := NewPromptUseCase(&fakeTemplateSource{err: ioErr}, "", logger.Discard())

		_, err := uc.Materialize(context.Background(), "텐트")
		require.Error(t, err)
		assert.ErrorIs(t, err, ioErr)
		assert.Contains(t, err.Error(), "materialize prompt:")
		assert.Equal(t, "오류", entity.Title(err))
	})
}
