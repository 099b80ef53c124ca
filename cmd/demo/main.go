package main

import (
	"fmt"

	"quota-gateway/middleware/ratelimit/infra"
	"quota-gateway/proxy"
)

// Demonstração fixa da cota por rota: com cota 2, as duas primeiras
// requisições de uma rota passam e a terceira recebe 403.
func main() {
	srv := proxy.NewServer(proxy.NewApp(), infra.NewQuotaStore(2))

	requests := []struct {
		method string
		url    string
	}{
		{"GET", "/app/status"},
		{"GET", "/app/status"},
		{"GET", "/app/status"},
		{"POST", "/create/user"},
		{"GET", "/create/user"},
	}

	for _, req := range requests {
		status, body := srv.HandleRequest(req.url, req.method)
		fmt.Printf("%s %s -> (%d, %q)\n", req.method, req.url, status, body)
	}
}
