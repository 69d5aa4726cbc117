package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Init 打开数据库连接并执行自动迁移，结果保存在全局 DB 中。
// dsn 为空时 sqlite 将回退到默认值 sitecms.db。
func Init(driver, dsn string) error {
	gdb, err := Open(driver, dsn)
	if err != nil {
		return err
	}
	if err := Migrate(gdb); err != nil {
		return err
	}
	DB = gdb
	return nil
}

// Open connects to the configured database without migrating it.
func Open(driver, dsn string) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return gdb, nil
}

// Migrate 自动迁移模式，为内容模型创建表
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Menu{},
		&MenuItem{},
		&Tab{},
		&TabItem{},
		&Service{},
		&SiteSettings{},
	)
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	path := strings.TrimSpace(dsn)

	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		if path == "" {
			path = "sitecms.db"
		}
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
		return sqlite.Open(path), nil
	case DriverMySQL:
		return mysql.Open(path), nil
	case DriverPostgres:
		return postgres.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, ":memory:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
