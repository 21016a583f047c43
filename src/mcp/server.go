// Package mcp serves the sightings lookup as an MCP tool over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snet-locator/src/config"
	"snet-locator/src/feed"
	"snet-locator/src/logger"
	"snet-locator/src/present"
	"snet-locator/src/ranking"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// FindResponse is the find_sightings tool result.
type FindResponse struct {
	Query     string          `json:"query"`
	FeedURL   string          `json:"feed_url"`
	Count     int             `json:"count"`
	Skipped   int             `json:"skipped_malformed,omitempty"`
	Sightings []present.Entry `json:"sightings"`
}

// Server is the MCP server for the locator.
type Server struct {
	mcpServer *server.MCPServer
	store     *config.Store
	fetcher   feed.Fetcher
	log       logger.Logger
	// urlOverride replaces the stored feed URL when set.
	urlOverride string
	now         func() time.Time
}

// NewServer creates a new MCP server. Settings are read from store on every
// call; urlOverride, when non-empty, is used instead.
func NewServer(store *config.Store, fetcher feed.Fetcher, urlOverride string, log logger.Logger) *Server {
	s := server.NewMCPServer(
		"snet-locator",
		Version,
		server.WithToolCapabilities(true),
	)

	srv := &Server{
		mcpServer:   s,
		store:       store,
		fetcher:     fetcher,
		log:         log,
		urlOverride: urlOverride,
		now:         time.Now,
	}
	srv.registerTools()

	return srv
}

// registerTools registers all available tools.
func (s *Server) registerTools() {
	findTool := mcp.NewTool("find_sightings",
		mcp.WithDescription("Find where and when people or devices were last seen. Matches the query against full names (case-insensitive; the first space also matches '.' or '-'), falling back to host names when no name matches. Results are sorted most recent first."),
		mcp.WithString("query",
			mcp.Description("Name fragment, e.g. \"john smith\". Empty returns everyone."),
		),
	)

	s.mcpServer.AddTool(findTool, s.handleFindSightings)
}

// Run starts the MCP server on stdio.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// handleFindSightings handles the find_sightings tool call.
func (s *Server) handleFindSightings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	url, err := s.feedURL()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.log.Debug("fetching feed", "url", url, "query", query)

	result, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.Error("fetch failed", "url", url, "err", err)
		var userErr *feed.UserError
		if errors.As(feed.WrapError(err, url, s.store.Path), &userErr) {
			return mcp.NewToolResultError(userErr.Message + "\n" + userErr.Hint), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows := ranking.Find(result.Sightings, query)

	response := FindResponse{
		Query:     query,
		FeedURL:   url,
		Count:     len(rows),
		Skipped:   result.Skipped,
		Sightings: present.Entries(rows, s.now()),
	}

	jsonBytes, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// feedURL resolves the feed URL without prompting; the stdio transport
// owns stdin.
func (s *Server) feedURL() (string, error) {
	if s.urlOverride != "" {
		return s.urlOverride, nil
	}

	settings, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("no feed configured in %s; run the locator once interactively or set %s: %w", s.store.Path, config.EnvURL, err)
	}

	return settings.LocatorDataPath, nil
}
