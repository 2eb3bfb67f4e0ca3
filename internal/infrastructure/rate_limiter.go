package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ChatRateLimiter limits how fast a single chat can trigger handlers.
type ChatRateLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*chatLimiter
	rate     rate.Limit
	burst    int
}

type chatLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewChatRateLimiter creates a limiter allowing r requests per second with
// the given burst per chat. A background loop drops chats idle for more
// than 10 minutes.
func NewChatRateLimiter(r rate.Limit, burst int) *ChatRateLimiter {
	rl := &ChatRateLimiter{
		limiters: make(map[int64]*chatLimiter),
		rate:     r,
		burst:    burst,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the chat may trigger another handler now.
func (rl *ChatRateLimiter) Allow(chatID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[chatID]
	if !ok {
		cl = &chatLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[chatID] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *ChatRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for chatID, cl := range rl.limiters {
			if now.Sub(cl.lastSeen) > 10*time.Minute {
				delete(rl.limiters, chatID)
			}
		}
		rl.mu.Unlock()
	}
}
