package tui

import "errors"

// ErrMissingExpenditureService is returned when the expenditure service is not provided.
var ErrMissingExpenditureService = errors.New("tui: expenditure service is required")

// ErrMissingContributionService is returned when the contribution service is not provided.
var ErrMissingContributionService = errors.New("tui: contribution service is required")

// ErrMissingBallotService is returned when the ballot service is not provided.
var ErrMissingBallotService = errors.New("tui: ballot service is required")

// ErrInvalidPorts is returned when no ports are supplied.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
