package infra

import (
	"sync"

	"quota-gateway/middleware/ratelimit/domain"
)

// QuotaStore implementa uma cota fixa de requisições por chave (ex: rota).
//
// Diferente do Store (token-bucket), a cota não se renova: cada chave tem
// direito a `max` requisições durante a vida do processo. O contador nasce
// em 1 na primeira requisição, é incrementado a cada requisição permitida e
// congela quando ultrapassa a cota. Não há reset nem expiração de chaves.
type QuotaStore struct {
	mu     sync.Mutex
	counts map[string]int
	max    int
}

func NewQuotaStore(max int) *QuotaStore {
	return &QuotaStore{
		counts: make(map[string]int),
		max:    max,
	}
}

// Max retorna a cota configurada por chave.
func (s *QuotaStore) Max() int { return s.max }

// Get implementa domain.LimiterStore.
func (s *QuotaStore) Get(key domain.Key) domain.Limiter {
	return quotaLimiter{store: s, key: string(key)}
}

// Allow consome uma unidade da cota da chave.
//
// Acima da cota retorna false e o contador não é mais incrementado.
func (s *QuotaStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, ok := s.counts[key]
	if !ok {
		count = 1
		s.counts[key] = count
	}
	if count > s.max {
		return false
	}
	s.counts[key] = count + 1
	return true
}

// Count retorna o valor bruto do contador da chave (0 se nunca vista).
func (s *QuotaStore) Count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

// Remaining retorna quantas requisições ainda cabem na cota da chave.
func (s *QuotaStore) Remaining(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, ok := s.counts[key]
	if !ok {
		return s.max
	}
	// o contador nasce em 1 e é incrementado a cada requisição permitida,
	// então count-1 requisições já foram consumidas.
	rem := s.max - (count - 1)
	if rem < 0 {
		return 0
	}
	return rem
}

type quotaLimiter struct {
	store *QuotaStore
	key   string
}

func (l quotaLimiter) Allow() bool { return l.store.Allow(l.key) }
