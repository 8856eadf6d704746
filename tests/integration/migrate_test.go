//go:build integration

package integration

import (
	"context"
	"testing"

	"quiz-seed/database/migrations"
	"quiz-seed/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_IsRepeatable(t *testing.T) {
	applied, err := database.RunMigrations(context.Background(), db, migrations.FS, logInstance)
	require.NoError(t, err)
	assert.Zero(t, applied)

	assert.GreaterOrEqual(t, countRows(t, "schema_migrations"), 2)
}
