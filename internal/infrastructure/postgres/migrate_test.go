package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/menuqr?sslmode=disable", migrateURL("postgres://u:p@db:5432/menuqr?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/menuqr", migrateURL("postgresql://u@db/menuqr"))
	assert.Equal(t, "pgx5://ya", migrateURL("pgx5://ya"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/000001_init.up.sql")
	assert.Contains(t, files, "migrations/000001_init.down.sql")

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	for name := range constraintFields {
		if name == "businesses_pkey" {
			continue
		}
		assert.Contains(t, string(up), name, "el mapa de conflictos debe coincidir con el esquema")
	}
}
