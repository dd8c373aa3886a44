package config

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenActivityDB connects to the database backing swipes, likes, comments
// and users. It is only called for the sqlite and postgres drivers.
func OpenActivityDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.ActivityDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.ActivityDSN)
	case DriverPostgres:
		dialector = postgres.Open(cfg.ActivityDSN)
	default:
		return nil, errors.Errorf("activity driver %q has no database", cfg.ActivityDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to activity database")
	}

	// Every connection to an in-memory SQLite DSN gets its own empty
	// database, so the pool has to stay at one connection.
	if cfg.ActivityDriver == DriverSQLite && strings.Contains(cfg.ActivityDSN, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access activity connection pool")
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}
	return db, nil
}
