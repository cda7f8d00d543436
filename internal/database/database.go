package database

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type Options struct {
	// LogLevel is the gorm logger level; zero means warn.
	LogLevel logger.LogLevel
}

// Open builds a handle for dsn without contacting the server. Connectivity
// is owned by Manager so that an unreachable store never blocks startup.
//
//	postgres://, postgresql://  -> PostgreSQL (pgx)
//	mysql://                    -> MySQL
//	anything else               -> SQLite file or URI (pure Go driver)
func Open(dsn string, opts Options) (*gorm.DB, error) {
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	cfg := &gorm.Config{
		DisableAutomaticPing: true,
		Logger: logger.New(slogWriter{}, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}

	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		slog.Info("using PostgreSQL store")
		return gorm.Open(postgres.New(postgres.Config{DSN: dsn}), cfg)

	case strings.HasPrefix(dsn, "mysql://"):
		slog.Info("using MySQL store")
		return gorm.Open(mysql.New(mysql.Config{
			DSN:                       strings.TrimPrefix(dsn, "mysql://"),
			SkipInitializeWithVersion: true,
			DefaultStringSize:         255,
		}), cfg)

	case dsn == "":
		return nil, fmt.Errorf("database: empty DSN")
	}

	slog.Info("using SQLite store", "dsn", dsn)
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), cfg)
	if err != nil {
		return nil, err
	}

	// SQLite allows one writer; serialising avoids SQLITE_BUSY under load.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	slog.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}
