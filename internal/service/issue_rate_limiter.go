package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// IssueRateLimiter limita cuántas credenciales se emiten por identidad
// en una ventana de tiempo. La identidad es declarada por el cliente,
// así que el endpoint de emisión necesita un freno básico.
type IssueRateLimiter interface {
	Allow(key string) bool
}

const redisIssueAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisIssueRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisIssueRateLimiter(client *redis.Client, window time.Duration, max int) IssueRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisIssueRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "session:rl:",
	}
}

func (l *redisIssueRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisIssueAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		// Si Redis no responde, no bloqueamos la emisión.
		return true
	}
	return count <= l.max
}
