package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing ballot service returns error", func(t *testing.T) {
		ports := validPorts()
		ports.Ballots = nil

		server, err := NewServer(ports)

		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingBallotService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts())

		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Ports)
		want   error
	}{
		{"all ports", func(*Ports) {}, nil},
		{"no expenditures", func(p *Ports) { p.Expenditures = nil }, ErrMissingExpenditureService},
		{"no contributions", func(p *Ports) { p.Contributions = nil }, ErrMissingContributionService},
		{"no ballots", func(p *Ports) { p.Ballots = nil }, ErrMissingBallotService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPorts()
			tt.mutate(p)

			err := p.Validate()

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServer_RunHTTP_BadAddress(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	err = server.RunHTTP(context.Background(), "not-an-address")

	assert.Error(t, err)
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()
	cancel()

	assert.NoError(t, <-done)
}
