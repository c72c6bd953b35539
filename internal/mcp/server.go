// ABOUTME: MCP server initialization and configuration for blogbuild.
// ABOUTME: Exposes build and index tools so agents can rebuild the blog and read posts.
package mcp

import (
	"context"
	"fmt"
	"sync"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/2389-research/blogbuild/internal/builder"
	"github.com/2389-research/blogbuild/internal/logging"
	"github.com/2389-research/blogbuild/internal/render"
	"github.com/2389-research/blogbuild/internal/storage"
)

// Server wraps the MCP server around a site store.
type Server struct {
	mcp   *gomcp.Server
	store storage.SiteStore
	site  render.SiteInfo
	log   logrus.FieldLogger

	buildMu sync.Mutex // one build at a time
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithSite sets the page author, year, and escaping used by build_posts.
func WithSite(site render.SiteInfo) ServerOption {
	return func(s *Server) {
		s.site = site
	}
}

// WithLogger sets the diagnostic logger passed to builds.
func WithLogger(l logrus.FieldLogger) ServerOption {
	return func(s *Server) {
		s.log = l
	}
}

// NewServer creates an MCP server with build and index tools.
func NewServer(store storage.SiteStore, opts ...ServerOption) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("site store is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "blogbuild",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:   mcpServer,
		store: store,
		site:  render.DefaultSite(),
		log:   logging.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerBuildTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}

func (s *Server) newBuilder() (*builder.Builder, error) {
	return builder.New(s.store, builder.WithSite(s.site), builder.WithLogger(s.log))
}
