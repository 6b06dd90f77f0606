package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_TruncatesToDay(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	d := NewDate(time.Date(2025, time.June, 3, 23, 30, 0, 0, loc))

	assert.True(t, d.Valid)
	assert.Equal(t, "2025-06-03", d.String())
	assert.Equal(t, time.UTC, d.Time.Location())
	assert.False(t, d.IsZero())
}

func TestDate_InvalidKeepsRaw(t *testing.T) {
	d := Date{Raw: "sometime in May"}

	assert.False(t, d.Valid)
	assert.Equal(t, "sometime in May", d.String())
	assert.False(t, d.IsZero())
	assert.True(t, Date{}.IsZero())
}

func TestDate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]Date{
		NewDate(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)),
		{Raw: "n/a"},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `["2025-07-01","n/a"]`, string(data))
}
