// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - QuotaStore: cota fixa de requisições por chave (rota), sem renovação
//   - Store: token bucket por chave usando golang.org/x/time/rate
//   - MemoryStatsStore / RedisStatsStore: contadores de decisões allow/deny
//   - ChanPool: semáforo simples para limite de concorrência
package infra
