package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "runoff://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "expenditures/organizations",
		Name:        "organizations",
		Description: "Organisations making independent expenditures, in first-seen order",
		MIMEType:    "application/json",
	}, s.handleOrganizationsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "ballots/{election}",
		Name:        "ballot-report",
		Description: "Ballot-return statistics and batch deltas for the primary or runoff",
		MIMEType:    "application/json",
	}, s.handleBallotResource)
}

func (s *Server) handleOrganizationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	orgs, err := s.ports.Expenditures.Organizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organisations: %w", err)
	}
	if orgs == nil {
		orgs = []string{}
	}
	return jsonResource(req.Params.URI, orgs)
}

func (s *Server) handleBallotResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractElection(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	election, err := parseElection(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	_, output, err := s.handleBallotStats(ctx, nil, BallotStatsInput{Election: string(election)})
	if err != nil {
		return nil, fmt.Errorf("building %s report: %w", election, err)
	}
	return jsonResource(req.Params.URI, output)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractElection returns the election from runoff://ballots/{election}.
func extractElection(uri string) string {
	const prefix = uriScheme + "ballots/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(uri, prefix), "/")
}
