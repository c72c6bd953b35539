// ABOUTME: MCP tool implementations for building the blog and reading its index.
// ABOUTME: Registers build_posts and list_posts tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/blogbuild/internal/models"
)

func (s *Server) registerBuildTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "build_posts",
		Description: "Convert every markdown post into an HTML page and rewrite the posts index. Returns the post list, newest first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {}
		}`),
	}, s.handleBuildPosts)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_posts",
		Description: "List posts from the most recently written index, newest first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "number", "description": "Maximum number of posts to return (default all)"}
			}
		}`),
	}, s.handleListPosts)
}

func (s *Server) handleBuildPosts(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	b, err := s.newBuilder()
	if err != nil {
		return toolError("failed to create builder: %v", err), nil
	}

	result, err := b.Build()
	if err != nil {
		return toolError("build failed: %v", err), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Built %d posts (run %s)\n", len(result.Posts), result.RunID.String()[:8]))
	if result.IndexWritten {
		sb.WriteString(fmt.Sprintf("Index: %s\n", s.store.IndexPath()))
	}
	sb.WriteString(formatPosts(result.Posts))

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleListPosts(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Limit int `json:"limit"`
	}
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return toolError("invalid arguments: %v", err), nil
		}
	}

	posts, err := s.store.ReadIndex()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &gomcp.CallToolResult{
				Content: []gomcp.Content{&gomcp.TextContent{Text: "No posts found."}},
			}, nil
		}
		return toolError("failed to read index: %v", err), nil
	}

	if args.Limit > 0 && len(posts) > args.Limit {
		posts = posts[:args.Limit]
	}
	if len(posts) == 0 {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No posts found."}},
		}, nil
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: formatPosts(posts)}},
	}, nil
}

// formatPosts renders posts as indented JSON for tool output.
func formatPosts(posts []models.PostRecord) string {
	if posts == nil {
		posts = []models.PostRecord{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to encode posts: %v", err)
	}
	return string(data)
}

func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
