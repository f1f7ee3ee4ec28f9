package loans

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, 8, 23)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-23"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`"23/08/2026"`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2026-08-23", d.String(), "time of day is truncated")

	require.NoError(t, d.Scan([]byte("2026-01-02")))
	assert.Equal(t, "2026-01-02", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateOrdering(t *testing.T) {
	d := NewDate(2026, 8, 23)
	assert.True(t, d.AddDays(7).After(d))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.After(d))
}
