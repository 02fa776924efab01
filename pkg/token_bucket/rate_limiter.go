package token_bucket

import (
	"math"
	"sync"
	"time"
)

// TokenBucket - потокобезопасный лимитер: capacity задаёт всплеск,
// refillRate - сколько токенов возвращается в секунду. Токены считаются
// дробно, поэтому при маленьком refillRate накопленное время не теряется.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени, нужен для тестов.
func WithClock(now func() time.Time) Option {
	return func(t *TokenBucket) {
		t.now = now
	}
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	t := &TokenBucket{
		capacity:   float64(max(capacity, 0)),
		refillRate: math.Max(refillRate, 0),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.tokens = t.capacity
	t.lastRefill = t.now()
	return t
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// Tokens возвращает целое число доступных сейчас токенов.
func (t *TokenBucket) Tokens() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return int(t.tokens)
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
