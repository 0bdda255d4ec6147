package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestDateRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/09/2026"`), &d))
}

func TestDateScan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2026-09-01", d.String())
	})

	t.Run("from text", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2026-09-01"))
		assert.Equal(t, "2026-09-01", d.String())
	})

	t.Run("from timestamp text", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2026-09-01T00:00:00Z"))
		assert.Equal(t, "2026-09-01", d.String())
	})
}
