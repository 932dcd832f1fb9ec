package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValueIsPlainDateString(t *testing.T) {
	d := NewDate(2025, time.November, 8)

	v, err := d.Value()
	require.NoError(t, err)

	// Stored as text on sqlite, so the driver value must sort like a date:
	// a trailing time component would make "date <= ?" miss the end of a
	// range.
	assert.Equal(t, "2025-11-08", v)
	assert.True(t, v.(string) <= d.String())
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2025-11-08"))
	assert.Equal(t, NewDate(2025, time.November, 8), d)

	require.NoError(t, d.Scan("2025-11-08 00:00:00+00:00"))
	assert.Equal(t, NewDate(2025, time.November, 8), d)

	require.NoError(t, d.Scan(time.Date(2025, time.November, 8, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2025, time.November, 8), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.November, 2)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-11-02"`, string(data))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, d, parsed)
}
