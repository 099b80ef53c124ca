// Package ratelimit fornece adapters HTTP (net/http) para cota por rota,
// rate limit e limite de concorrência.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de net/http)
//   - application: casos de uso (decisão allow/deny, acquire/timeout) sem net/http
//   - infra: implementações concretas (cota fixa, token bucket, semáforo, stats)
//   - ratelimit (este pacote): middlewares HTTP + wiring/extração de chave + tradução para status/headers
//
// Fluxo no gateway:
//
//  1. Extrai a chave: o path da requisição (cota por rota) ou o cliente (IP/header/XFF)
//  2. Chama a camada application para obter a decisão
//  3. Se bloqueado, responde 403 (cota), 429 (rate limit) ou 503 (concorrência)
//  4. Se permitido, chama o próximo handler (ex: reverse proxy)
//
// Variáveis de ambiente do binário gateway (cmd/gateway) controlam o comportamento,
// como MODE, QUOTA_MAX, RATE_RPS, RATE_BURST, CONCURRENCY_MAX e CONCURRENCY_TIMEOUT.
package ratelimit
