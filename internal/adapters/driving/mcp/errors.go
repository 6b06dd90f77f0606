// Package mcp exposes the runoff dashboards over the Model Context Protocol
// so assistants can query spending, fundraising and ballot returns.
package mcp

import "errors"

// ErrMissingExpenditureService is returned when the expenditure service is not provided.
var ErrMissingExpenditureService = errors.New("mcp: expenditure service is required")

// ErrMissingContributionService is returned when the contribution service is not provided.
var ErrMissingContributionService = errors.New("mcp: contribution service is required")

// ErrMissingBallotService is returned when the ballot service is not provided.
var ErrMissingBallotService = errors.New("mcp: ballot service is required")
