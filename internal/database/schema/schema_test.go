package schema

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "00001_create_magic_items.sql", files[0])

	for _, name := range files {
		body, err := fs.ReadFile(Migrations(), name)
		require.NoError(t, err, name)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrations_CreatesItemColumns(t *testing.T) {
	body, err := fs.ReadFile(Migrations(), "00001_create_magic_items.sql")
	require.NoError(t, err)

	for _, col := range []string{
		"id SERIAL PRIMARY KEY",
		"name VARCHAR(255) NOT NULL",
		"rarity_value DOUBLE PRECISION NOT NULL",
		"weight DOUBLE PRECISION NOT NULL",
		"durability DOUBLE PRECISION NOT NULL",
		"stock INTEGER NOT NULL DEFAULT 1",
	} {
		assert.Contains(t, string(body), col)
	}
}
