package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"golang.org/x/time/rate"
)

// limiters ociosos por mais que isso são descartados
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limita requisições por IP. Sem rotas informadas, limita todas.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	paths map[string]bool
	now   func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter(rps float64, burst int, paths ...string) *RateLimiter {
	p := make(map[string]bool, len(paths))
	for _, path := range paths {
		p[path] = true
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		paths:    p,
		now:      time.Now,
		visitors: map[string]*visitor{},
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(rl.visitors, key)
		}
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware devolve VAL_005 quando o IP excede o limite
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(rl.paths) > 0 && !rl.paths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if !rl.limiterFor(ip).AllowN(rl.now(), 1) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":        r.URL.Path,
					"remote_addr": ip,
				}).Warn("Limite de requisições excedido")
				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Too many requests", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
