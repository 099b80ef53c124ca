package application

import (
	"time"

	"quota-gateway/middleware/ratelimit/domain"
)

// Service concentra a regra de aplicação do rate limit / cota.
//
// Ele não sabe nada sobre HTTP (headers/status), apenas retorna uma decisão.
type Service struct {
	Store domain.LimiterStore
	// RetryAfter é a recomendação devolvida ao bloquear.
	// 0 significa "sem recomendação" (ex: cota fixa, que nunca se renova).
	RetryAfter time.Duration
}

func (s Service) Decide(key domain.Key) domain.Decision {
	if s.Store == nil {
		return domain.Decision{Allowed: true}
	}

	lim := s.Store.Get(key)
	if lim == nil {
		return domain.Decision{Allowed: true}
	}
	if lim.Allow() {
		return domain.Decision{Allowed: true}
	}
	return domain.Decision{Allowed: false, RetryAfter: s.RetryAfter}
}
