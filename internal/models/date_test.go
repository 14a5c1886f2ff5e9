package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12", d.String())

	for _, bad := range []string{"12-06-2024", "2024-6-12", "2024-06-12T00:00:00Z", "tomorrow", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.June, 12)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-12"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"12/06/2024"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`20240612`), &back))
}

func TestDateOptionalFieldRoundTrip(t *testing.T) {
	type payload struct {
		Date *Date `json:"date"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-06-12"}`), &p))
	require.NotNil(t, p.Date)
	assert.Equal(t, "2024-06-12", p.Date.String())

	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.Nil(t, p.Date)
}

func TestDateScan(t *testing.T) {
	var d Date

	// drivers hand DATE columns back as a midnight time.Time, possibly
	// in a non-UTC session zone
	loc := time.FixedZone("UTC-3", -3*60*60)
	require.NoError(t, d.Scan(time.Date(2024, 6, 12, 0, 0, 0, 0, loc)))
	assert.Equal(t, "2024-06-12", d.String())

	require.NoError(t, d.Scan([]byte("2024-07-01")))
	assert.Equal(t, "2024-07-01", d.String())

	require.NoError(t, d.Scan("2024-08-15"))
	assert.Equal(t, "2024-08-15", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.June, 12).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12", v)
}
