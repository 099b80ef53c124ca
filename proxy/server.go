package proxy

import (
	"net/http"

	"quota-gateway/middleware/ratelimit/application"
	"quota-gateway/middleware/ratelimit/domain"
)

// Server encaminha requisições para um Backend depois de consultar a cota da
// rota. Acima da cota responde 403 "Not Allowed" sem tocar no backend.
//
// Server também implementa Backend, então servers podem ser encadeados.
type Server struct {
	backend Backend
	svc     application.Service
}

// NewServer cria um server que usa o path da requisição como chave no store.
// O store é de propriedade exclusiva do server a partir daqui.
func NewServer(backend Backend, store domain.LimiterStore) *Server {
	return &Server{
		backend: backend,
		svc:     application.Service{Store: store},
	}
}

// HandleRequest implementa Backend.
func (s *Server) HandleRequest(url, method string) (int, string) {
	dec := s.svc.Decide(domain.Key(url))
	if !dec.Allowed {
		return http.StatusForbidden, "Not Allowed"
	}
	return s.backend.HandleRequest(url, method)
}
