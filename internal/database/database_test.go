package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "sqlite driver must be registered")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestConnect_SQLiteCanExec(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE smoke (id INTEGER PRIMARY KEY, v TEXT)").Error)
	require.NoError(t, db.Exec("INSERT INTO smoke (v) VALUES (?)", "ok").Error)

	var v string
	require.NoError(t, db.Raw("SELECT v FROM smoke WHERE id = 1").Scan(&v).Error)
	assert.Equal(t, "ok", v)
}
