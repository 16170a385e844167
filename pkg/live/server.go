package live

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/wayfind-dev/wayfind/pkg/engine"
)

// RouteLister exposes the registered routes for the inspection endpoint.
// *engine.Engine satisfies it.
type RouteLister interface {
	Routes() []*engine.Route
}

// routeInfo is the JSON shape of one route on /routes.
type routeInfo struct {
	Path string `json:"path"`
}

// Server exposes the live bridge over HTTP: a WebSocket endpoint for the
// browser client and a JSON route listing for tooling.
type Server struct {
	bridge   *Bridge
	routes   RouteLister
	upgrader websocket.Upgrader
	logger   *slog.Logger
	mux      chi.Router
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the server logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithCheckOrigin sets the WebSocket origin check. The default accepts
// same-origin requests only.
func WithCheckOrigin(fn func(*http.Request) bool) ServerOption {
	return func(s *Server) { s.upgrader.CheckOrigin = fn }
}

// NewServer creates a live server around bridge. The route lister is
// optional; without it /routes serves an empty list.
func NewServer(bridge *Bridge, routes RouteLister, opts ...ServerOption) *Server {
	s := &Server{
		bridge: bridge,
		routes: routes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/live", s.handleSocket)
	r.Get("/routes", s.handleRoutes)
	s.mux = r

	return s
}

// Handler returns the HTTP handler, mountable under any prefix.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleSocket upgrades the connection, attaches it to the bridge, and
// pumps client frames until the socket closes.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	s.bridge.Attach(conn)
	defer func() {
		s.bridge.Detach(conn)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		msg, err := DecodeMessage(data)
		if err != nil {
			s.logger.Warn("dropping frame", "error", err)
			continue
		}
		s.bridge.HandleMessage(msg)
	}
}

// handleRoutes serves the registered route paths as JSON.
func (s *Server) handleRoutes(w http.ResponseWriter, _ *http.Request) {
	infos := []routeInfo{}
	if s.routes != nil {
		for _, rt := range s.routes.Routes() {
			infos = append(infos, routeInfo{Path: rt.Path()})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		s.logger.Error("encode routes", "error", err)
	}
}
