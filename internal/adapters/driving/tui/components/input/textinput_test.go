package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
)

func TestNewFilterInput(t *testing.T) {
	input := NewFilterInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.False(t, input.Focused())
}

func TestNewFilterInput_NilStyles(t *testing.T) {
	input := NewFilterInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestFilterInput_IgnoresKeysWhenBlurred(t *testing.T) {
	input := NewFilterInput(nil)

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "", input.Value())
}

func TestFilterInput_TypesWhenFocused(t *testing.T) {
	input := NewFilterInput(nil)
	input.Focus()

	updated, _ := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, input, updated)
	assert.Equal(t, "a", input.Value())
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}

func TestFilterInput_View(t *testing.T) {
	assert.Contains(t, NewFilterInput(nil).View(), "Filter")
}

func TestFilterInput_SetValueReset(t *testing.T) {
	input := NewFilterInput(nil)

	input.SetValue("lincoln")
	assert.Equal(t, "lincoln", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestFilterInput_SetWidth(t *testing.T) {
	input := NewFilterInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 86, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}
