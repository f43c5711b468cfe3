package timezone_test

import (
	"airline/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	require.NoError(t, timezone.SetLocation("Asia/Jakarta"))
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	require.Error(t, timezone.SetLocation("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, timezone.GetLocation())

	require.NoError(t, timezone.SetLocation(""))
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "utc designator",
			value: "2024-08-30T14:30:00Z",
			want:  time.Date(2024, 8, 30, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "offset with fraction",
			value: "2024-08-30T21:30:00.5+07:00",
			want:  time.Date(2024, 8, 30, 14, 30, 0, 500000000, time.UTC),
		},
		{
			name:    "not a date",
			value:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "missing zone",
			value:   "2024-08-30T14:30:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseISO8601(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestTimestamp(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })
	require.NoError(t, timezone.SetLocation("UTC"))

	at := time.Date(2024, 1, 1, 12, 5, 9, 0, time.UTC)

	assert.Equal(t, "2024-01-01 12:05:09", timezone.Timestamp(at))
	assert.Equal(t, "2024-01-01", timezone.Format(at, "2006-01-02"))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
}
