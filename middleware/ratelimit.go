package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// pruneBefore 丢弃 cutoff 之前的尝试记录，原地复用切片
func pruneBefore(timestamps []time.Time, cutoff time.Time) []time.Time {
	kept := timestamps[:0]
	for _, t := range timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// LoginRateLimit 项目认证限流中间件
// 每 IP 在 window 内最多 maxAttempts 次尝试，超过则返回 429
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	var (
		mu    sync.Mutex
		store = make(map[string][]time.Time)
	)
	// 定期清理过期数据
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			cutoff := time.Now().Add(-window)
			for ip, ts := range store {
				if ts = pruneBefore(ts, cutoff); len(ts) == 0 {
					delete(store, ip)
				} else {
					store[ip] = ts
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		ts := pruneBefore(store[ip], now.Add(-window))
		if len(ts) >= maxAttempts {
			store[ip] = ts
			mu.Unlock()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts, please try again later",
			})
			return
		}
		store[ip] = append(ts, now)
		mu.Unlock()

		c.Next()
	}
}
