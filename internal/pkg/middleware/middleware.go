package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"turf-booking-service/internal/pkg/auth"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/time/rate"
)

type SessionParser interface {
	Parse(token string) (*auth.Claims, error)
}

type Middleware struct {
	Log        *otelzap.Logger
	Signer     SessionParser
	CookieName string
}

// ValidateSession rejects requests without a valid session and exposes the member as
// Locals "pma_id" and "email".
func (m *Middleware) ValidateSession(ctx *fiber.Ctx) error {
	token := m.sessionToken(ctx)
	if token == "" {
		m.Log.Ctx(ctx.UserContext()).Warn("missing session")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("login required"))
	}

	claims, err := m.Signer.Parse(token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate session: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("session expired"))
	}

	ctx.Locals("pma_id", claims.Subject)
	ctx.Locals("email", claims.Email)

	return ctx.Next()
}

// IdentifySession is ValidateSession without the rejection.
func (m *Middleware) IdentifySession(ctx *fiber.Ctx) error {
	if token := m.sessionToken(ctx); token != "" {
		if claims, err := m.Signer.Parse(token); err == nil {
			ctx.Locals("pma_id", claims.Subject)
			ctx.Locals("email", claims.Email)
		}
	}
	return ctx.Next()
}

func (m *Middleware) sessionToken(ctx *fiber.Ctx) string {
	if c := ctx.Cookies(m.CookieName); c != "" {
		return c
	}
	if h := ctx.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}

// limiterIdle is longer than a full refill, so an evicted limiter would have been full anyway.
const limiterIdle = 2 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiterStore(limit rate.Limit, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*limiterEntry),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= limiterIdle {
		for key, e := range s.limiters {
			if now.Sub(e.lastSeen) >= limiterIdle {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimit allows perMinute requests per client IP, all of them available as a burst. The IP
// comes from X-Forwarded-For only when the engine trusts the peer as a proxy.
func (m *Middleware) RateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		perMinute = 1
	}
	store := newRateLimiterStore(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(ctx *fiber.Ctx) error {
		ip := helpers.ClientIP(ctx)
		if !store.getLimiter(ip).Allow() {
			m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("rate limit exceeded for %s on %s", ip, ctx.Path()))
			return helpers.RespError(ctx, m.Log, errors.TooManyRequests("too many requests, try again later"))
		}
		return ctx.Next()
	}
}
