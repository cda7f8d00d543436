// Package dbtest opens isolated in-memory SQLite stores for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"jobvibe/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh store unique to t, migrated with models.
func Open(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := database.Open(dsn, database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate test db: %v", err)
		}
	}
	return db
}
