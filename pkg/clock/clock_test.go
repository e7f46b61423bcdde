package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"day shift", "09:00", "17:00", 8},
		{"overnight", "22:00", "02:00", 4},
		{"empty start", "", "17:00", 0},
		{"empty end", "09:00", "", 0},
		{"same time", "09:00", "09:00", 0},
		{"one minute before midnight wrap", "00:01", "00:00", 23.98},
		{"twenty minutes", "18:00", "18:20", 0.33},
		{"forty minutes", "18:00", "18:40", 0.67},
		{"half hour", "16:30", "23:00", 6.5},
		{"malformed", "9am", "17:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeHours(tt.start, tt.end))
		})
	}
}

func TestComputeHoursNeverNegative(t *testing.T) {
	for sh := 0; sh < 24; sh += 5 {
		for eh := 0; eh < 24; eh += 3 {
			start := time.Date(0, 1, 1, sh, 15, 0, 0, time.UTC).Format(Layout)
			end := time.Date(0, 1, 1, eh, 45, 0, 0, time.UTC).Format(Layout)
			got := ComputeHours(start, end)
			assert.GreaterOrEqual(t, got, 0.0, "%s-%s", start, end)
			assert.Less(t, got, 24.0, "%s-%s", start, end)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+45*time.Minute, d)

	_, err = Parse("25:00")
	assert.Error(t, err)
	assert.False(t, Valid(""))
	assert.True(t, Valid(" 23:59 "))
}
