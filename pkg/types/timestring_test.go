package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	for _, invalid := range []string{"", "25:00", "10:65", "10.30", "abc"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "value %q", invalid)
	}
}

func TestTimeString_Comparison(t *testing.T) {
	earlier := TimeString("09:00")
	later := TimeString("17:30")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsBefore(earlier))
	assert.False(t, earlier.IsAfter(earlier))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	result, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), result)

	// Переход через полночь недопустим
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// Колонки TIME приходят с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", value)

	value, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = TimeString("nonsense").Value()
	assert.Error(t, err)
}
