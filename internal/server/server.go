// Package server provides the tool catalog, dispatcher, and HTTP/SSE
// transport for the Solscan MCP server.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"solscan-mcp/internal/solscan"
)

// Config contains server configuration values such as port, auth token, and
// the Solscan API credential. Logger receives every tool call and upstream
// exchange; tests inject a nop or observer logger.
type Config struct {
	Port      string
	APIToken  string
	AuthToken string
	BaseURL   string
	Logger    *zap.Logger
}

// Server contains the configured router, upstream client, tool registry, and
// the MCP protocol server with its SSE transport.
type Server struct {
	cfg      Config
	router   *chi.Mux
	log      *zap.Logger
	client   *solscan.Client
	mcp      *mcpserver.MCPServer
	sse      *mcpserver.SSEServer
	catalog  []toolEntry
	registry map[string]toolEntry
}

// New constructs a Server with the tool catalog, middleware, and routes
// configured.
func New(cfg Config) *Server {
	if cfg.BaseURL == "" {
		cfg.BaseURL = solscan.DefaultBaseURL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		log:    cfg.Logger,
		client: solscan.New(cfg.BaseURL, cfg.APIToken, nil, cfg.Logger),
	}
	s.registerTools()

	s.mcp = mcpserver.NewMCPServer(
		"solscan-api",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
	for _, e := range s.catalog {
		name := e.tool.Name
		s.mcp.AddTool(e.tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.Call(ctx, name, req.GetArguments())
		})
	}
	s.sse = mcpserver.NewSSEServer(s.mcp,
		mcpserver.WithSSEEndpoint("/sse"),
		mcpserver.WithMessageEndpoint("/messages/"),
	)

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	// The SSE stream is long-lived, so no timeout middleware here.
	s.router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Handle("/sse", s.sse.SSEHandler())
		r.Handle("/messages/", s.sse.MessageHandler())
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AuthToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.AuthToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
