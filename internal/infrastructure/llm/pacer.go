package llm

import (
	"context"
	"sync"
	"time"
)

// Pacer bir vaqtdagi so'rovlar sonini cheklash va so'rovlar orasida minimal interval saqlash
type Pacer struct {
	sem   chan struct{}
	mu    sync.Mutex
	last  time.Time
	delay time.Duration
}

// NewPacer yangi Pacer yaratish
func NewPacer(concurrency int, delay time.Duration) *Pacer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pacer{
		sem:   make(chan struct{}, concurrency),
		delay: delay,
	}
}

// Acquire navbat olish. Qaytgan funksiya navbatni bo'shatadi.
func (p *Pacer) Acquire(ctx context.Context) (func(), error) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	release := func() { <-p.sem }

	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if !p.last.IsZero() {
		if wait := p.delay - now.Sub(p.last); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				release()
				return nil, ctx.Err()
			}
			now = time.Now()
		}
	}
	p.last = now

	return release, nil
}
