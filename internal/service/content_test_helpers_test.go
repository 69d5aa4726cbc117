package service

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitecms/internal/config"
	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/sanitize"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContentTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:content-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

// setupFileTestDB opens an on-disk database so concurrent transactions use
// separate connections instead of one shared in-memory cache.
func setupFileTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "content.db") + "?_busy_timeout=5000&_txlock=immediate"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open file db: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate file db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

// failDeletesOn makes every DELETE against table fail with errRefused.
func failDeletesOn(t *testing.T, gdb *gorm.DB, table string, errRefused error) {
	t.Helper()
	err := gdb.Callback().Delete().Before("gorm:delete").Register("test:refuse_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errRefused)
		}
	})
	if err != nil {
		t.Fatalf("failed to register delete callback: %v", err)
	}
}

func testSanitizer() *sanitize.Sanitizer {
	return sanitize.New(config.DefaultSanitizer())
}

func intPtr(v int) *int {
	return &v
}

func itemTitles(items []ItemView) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
