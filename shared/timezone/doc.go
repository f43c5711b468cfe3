// Package timezone keeps every timestamp the service produces in one configured location.
//
//	now := timezone.Now()
//	at, err := timezone.ParseISO8601("2024-08-30T14:30:00Z")
//	body := timezone.Timestamp(now) // 2024-08-30 14:30:00
//
// The location comes from APP_TIMEZONE and is loaded when the package is imported.
// Use IANA names such as "UTC", "Asia/Jakarta" or "Europe/London".
package timezone
