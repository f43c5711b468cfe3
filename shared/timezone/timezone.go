package timezone

import (
	"airline/config"
	"airline/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
)

func init() {
	cfg := config.Get()

	if err := SetLocation(cfg.App.Timezone); err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
	}
}

// SetLocation switches the application timezone. An empty name selects UTC.
func SetLocation(name string) error {
	if name == "" {
		appLocation = time.UTC

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation = time.UTC

		return err //nolint:wrapcheck
	}

	appLocation = loc

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

// ParseISO8601 parses a zoned ISO-8601 timestamp such as 2024-08-30T14:30:00Z or
// 2024-08-30T14:30:00.123+07:00.
func ParseISO8601(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Timestamp renders t the way error bodies report it.
func Timestamp(t time.Time) string {
	return Format(t, constant.TimestampFormat)
}
