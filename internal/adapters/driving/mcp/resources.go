package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for docsearch resources.
const uriScheme = "docsearch://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the filter options catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "filters",
		Name:        "filters",
		Description: "Filter values present in the corpus",
		MIMEType:    "application/json",
	}, s.handleFiltersResource)
}

// handleFiltersResource returns the filter options catalog as JSON.
func (s *Server) handleFiltersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Filters == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	catalog, err := s.ports.Filters.FilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting filter options: %w", err)
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
