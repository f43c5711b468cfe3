package helper_test

import (
	"airline/helper"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tableRe     = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	referenceRe = regexp.MustCompile(`(?m)^\s*(\w+)\s+.*REFERENCES\s+(\w+)\s*\(id\)\s+ON DELETE (\w+)`)
)

type reference struct {
	target   string
	onDelete string
}

func initialSchema(t *testing.T) string {
	t.Helper()

	src, err := (&file.File{}).Open("file://../" + helper.MigrationsDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	first, err := src.First()
	require.NoError(t, err)

	body, _, err := src.ReadUp(first)
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	return string(raw)
}

func foreignKeys(schema string) map[string]reference {
	keys := make(map[string]reference)

	for _, table := range tableRe.FindAllStringSubmatch(schema, -1) {
		for _, ref := range referenceRe.FindAllStringSubmatch(table[2], -1) {
			keys[table[1]+"."+ref[1]] = reference{target: ref[2], onDelete: strings.ToUpper(ref[3])}
		}
	}

	return keys
}

func TestInitialSchema_DeleteRules(t *testing.T) {
	keys := foreignKeys(initialSchema(t))

	tests := []struct {
		column   string
		target   string
		onDelete string
	}{
		{column: "seats.flight_id", target: "flights", onDelete: "CASCADE"},
		{column: "reservations.seat_id", target: "seats", onDelete: "CASCADE"},
		{column: "reservations.passenger_id", target: "passengers", onDelete: "RESTRICT"},
		{column: "tickets.reservation_id", target: "reservations", onDelete: "CASCADE"},
		{column: "tickets.flight_id", target: "flights", onDelete: "CASCADE"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, ok := keys[tt.column]
			require.True(t, ok, "no foreign key on %s", tt.column)
			assert.Equal(t, tt.target, got.target)
			assert.Equal(t, tt.onDelete, got.onDelete)
		})
	}

	assert.Len(t, keys, len(tests), "unexpected foreign keys: %v", keys)
}

func TestInitialSchema_DownDropsEveryTable(t *testing.T) {
	src, err := (&file.File{}).Open("file://../" + helper.MigrationsDir)
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)

	body, _, err := src.ReadDown(first)
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	for _, table := range tableRe.FindAllStringSubmatch(initialSchema(t), -1) {
		assert.Contains(t, string(raw), "DROP TABLE IF EXISTS "+table[1]+";", "down migration leaves %s behind", table[1])
	}
}
