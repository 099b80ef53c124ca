// Package proxy contém o núcleo síncrono do gateway: uma tabela de rotas
// fixa (App) e um Server que consulta a cota por rota antes de delegar ao
// backend.
//
// É a mesma regra que o middleware HTTP aplica, porém sem net/http — útil
// para testes de unidade puros e para a demonstração em cmd/demo.
package proxy
