package database_test

import (
	"fmt"
	"testing"

	"krishiseva/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenGORM_SQLiteMigrate(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.OpenGORM(database.DriverSQLite, dsn, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("orders"))
	assert.True(t, db.Migrator().HasIndex("orders", "idx_orders_buyer_created"))

	// Running twice is a no-op.
	require.NoError(t, database.Migrate(db))
}

func TestOpenGORM_UnknownDriver(t *testing.T) {
	_, err := database.OpenGORM("oracle", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported gorm driver")
}
