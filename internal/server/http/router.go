package httpserver

import (
	"net/http"

	"github.com/mkutay/stargaze/internal/server/game"
)

// Server mounts the API and, when webDir is set, a static client.
type Server struct {
	h   *Handler
	mux *http.ServeMux
}

func NewServer(games *game.Manager, webDir string) *Server {
	h := NewHandler(games)
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	if webDir != "" {
		RegisterStaticRoutes(mux, webDir)
	}
	return &Server{h: h, mux: mux}
}

func (s *Server) Handler() *Handler { return s.h }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
