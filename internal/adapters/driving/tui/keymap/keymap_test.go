package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"quit", km.Quit, "q"},
		{"quit ctrl", km.Quit, "ctrl+c"},
		{"help", km.Help, "?"},
		{"back", km.Back, "esc"},
		{"up", km.Up, "k"},
		{"down", km.Down, "j"},
		{"select", km.Select, "enter"},
		{"filter", km.Filter, "/"},
		{"sort", km.Sort, "s"},
		{"reverse", km.Reverse, "r"},
		{"entity", km.Entity, "e"},
		{"election", km.Election, "tab"},
		{"compare", km.Compare, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.binding.Keys(), tt.key)
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.TableHelp(), 4)
	assert.Len(t, km.BallotHelp(), 4)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("/", km.Filter))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Sort))
}
