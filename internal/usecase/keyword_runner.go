package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

// EventKind runner hodisasi turi
type EventKind int

const (
	EventProgress EventKind = iota
	EventSuccess
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventSuccess:
		return "success"
	case EventError:
		return "error"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// KeywordEvent fon ishidan kelgan hodisa
type KeywordEvent struct {
	Kind    EventKind
	Message string                // EventProgress
	Result  *entity.KeywordResult // EventSuccess
	Err     error                 // EventError
}

// KeywordRunner bir vaqtda faqat bitta so'rovni fon goroutine da bajaradi
type KeywordRunner struct {
	keywords KeywordUseCase
	log      *slog.Logger

	mu   sync.Mutex
	busy bool
}

// NewKeywordRunner yangi KeywordRunner yaratish
func NewKeywordRunner(keywords KeywordUseCase, log *slog.Logger) *KeywordRunner {
	return &KeywordRunner{
		keywords: keywords,
		log:      log.With(sl.Module("runner")),
	}
}

// Busy so'rov bajarilayotganini tekshirish
func (r *KeywordRunner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Submit so'rovni fon rejimida boshlash. Kanalga progress, keyin bitta
// yakuniy hodisa (success yoki error) yuboriladi va kanal yopiladi.
func (r *KeywordRunner) Submit(ctx context.Context, req entity.KeywordRequest) (<-chan KeywordEvent, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return nil, &entity.Error{Kind: entity.ErrBusy, Op: "submit keywords"}
	}
	r.busy = true
	r.mu.Unlock()

	events := make(chan KeywordEvent, 2)
	go r.run(ctx, req, events)
	return events, nil
}

func (r *KeywordRunner) run(ctx context.Context, req entity.KeywordRequest, events chan<- KeywordEvent) {
	defer close(events)

	events <- KeywordEvent{
		Kind:    EventProgress,
		Message: fmt.Sprintf("%s LLM에 요청 중...", req.Provider),
	}

	result, err := r.generate(ctx, req)

	// yakuniy hodisadan oldin qayta yoqiladi
	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()

	if err != nil {
		events <- KeywordEvent{Kind: EventError, Err: err}
		return
	}
	events <- KeywordEvent{Kind: EventSuccess, Result: result}
}

func (r *KeywordRunner) generate(ctx context.Context, req entity.KeywordRequest) (result *entity.KeywordResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("keyword worker panicked", slog.Any("panic", p))
			result, err = nil, fmt.Errorf("keyword worker panic: %v", p)
		}
	}()

	result, err = r.keywords.Generate(ctx, req)
	if err != nil && errors.Is(err, context.Canceled) && !errors.Is(err, entity.ErrCanceled) {
		err = &entity.Error{Kind: entity.ErrCanceled, Op: "generate keywords", Cause: err}
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
