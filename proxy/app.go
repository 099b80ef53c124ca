package proxy

import (
	"io"
	"net/http"
)

// Backend é o servidor interno para onde o gateway encaminha requisições.
type Backend interface {
	HandleRequest(url, method string) (status int, body string)
}

// App é uma tabela de rotas fixa: pares (método, path) mapeiam para respostas
// fixas. Rotas desconhecidas respondem 404 "Not Ok".
type App struct {
	routes map[string]response
}

type response struct {
	status int
	body   string
}

// NewApp cria a aplicação com as rotas padrão.
func NewApp() *App {
	app := &App{routes: make(map[string]response)}
	app.Handle(http.MethodGet, "/app/status", http.StatusOK, "Ok")
	app.Handle(http.MethodPost, "/create/user", http.StatusCreated, "User Created")
	return app
}

// Handle registra uma rota fixa. A chave interna segue o formato
// "METHOD path", o mesmo usado na agregação de estatísticas.
func (a *App) Handle(method, path string, status int, body string) {
	a.routes[method+" "+path] = response{status: status, body: body}
}

// HandleRequest implementa Backend.
func (a *App) HandleRequest(url, method string) (int, string) {
	if resp, ok := a.routes[method+" "+url]; ok {
		return resp.status, resp.body
	}
	return http.StatusNotFound, "Not Ok"
}

// ServeHTTP expõe a tabela de rotas como um http.Handler, para servir a
// aplicação de verdade atrás do gateway (ver cmd/example-server).
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, body := a.HandleRequest(r.URL.Path, r.Method)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
