package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"

	"quota-gateway/middleware/ratelimit/application"
	"quota-gateway/middleware/ratelimit/domain"
)

type KeyFunc func(r *http.Request) string

type Options struct {
	Store domain.LimiterStore
	Stats domain.StatsStore
	KeyFn KeyFunc
	// KeyByPath usa o path da requisição como chave (cota por rota).
	// Ignorado quando KeyFn é informado.
	KeyByPath          bool
	KeyHeader          string
	TrustXForwardedFor bool
	RejectStatus       int
	// RejectBody é o corpo da resposta de bloqueio.
	// Vazio usa http.StatusText(RejectStatus).
	RejectBody string
	// RetryAfter é a recomendação enviada ao bloquear. 0 não envia o header
	// (cota fixa não se renova, então não há quando tentar de novo).
	RetryAfter          time.Duration
	AddRateLimitHeaders bool
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

type quotaInfo interface {
	Max() int
	Remaining(key string) int
}

func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}

		if trustXFF {
			// pega o primeiro IP do X-Forwarded-For (cliente original)
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				parts := strings.Split(xff, ",")
				if len(parts) > 0 {
					ip := strings.TrimSpace(parts[0])
					if ip != "" {
						return ip
					}
				}
			}
		}

		// fallback: RemoteAddr
		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// PathKeyFunc usa o path da URL como chave: todos os clientes compartilham a
// mesma cota de uma rota.
func PathKeyFunc() KeyFunc {
	return func(r *http.Request) string { return r.URL.Path }
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RejectBody == "" {
		opts.RejectBody = http.StatusText(opts.RejectStatus)
	}
	if opts.KeyFn == nil {
		if opts.KeyByPath {
			opts.KeyFn = PathKeyFunc()
		} else {
			opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
		}
	}

	svc := application.Service{
		Store:      opts.Store,
		RetryAfter: opts.RetryAfter,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				if ri, ok := opts.Store.(rateInfo); ok {
					w.Header().Set("X-RateLimit-RPS", formatFloat(ri.RPS()))
					w.Header().Set("X-RateLimit-Burst", formatInt(ri.Burst()))
				}
			}

			dec := svc.Decide(domain.Key(key))

			if opts.AddRateLimitHeaders {
				// Remaining já reflete a unidade consumida pela decisão acima
				if qi, ok := opts.Store.(quotaInfo); ok {
					w.Header().Set("X-RateLimit-Limit", formatInt(qi.Max()))
					w.Header().Set("X-RateLimit-Remaining", formatInt(qi.Remaining(key)))
				}
			}

			if opts.Stats != nil {
				_ = opts.Stats.Record(r.Context(), domain.StatsEvent{
					Key:     domain.Key(key),
					Allowed: dec.Allowed,
					Method:  r.Method,
					Path:    r.URL.Path,
					At:      time.Now(),
				})
			}
			if !dec.Allowed {
				if dec.RetryAfter > 0 {
					w.Header().Set("Retry-After", formatInt(int(dec.RetryAfter.Seconds())))
				}
				http.Error(w, opts.RejectBody, opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
