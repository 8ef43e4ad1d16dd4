package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cafeapi/config"
	"cafeapi/model"
	"cafeapi/store"
)

// Open connects to the configured database, migrates the cafes table and
// returns the selected store backend. The two backends satisfy the same
// contract; STORE_BACKEND picks one at startup.
//
// The DSN is either a postgres DSN (a postgres:// / postgresql:// URL, or
// key-value form such as "host=... user=... dbname=...") or a sqlite file
// path. Only the gorm backend accepts postgres.
func Open(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "gorm":
		return openGorm(cfg.DatabaseDSN)
	case "sqlite3":
		return openSQLite3(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want gorm or sqlite3)", cfg.StoreBackend)
	}
}

func openGorm(dsn string) (store.Store, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&model.Cafe{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Connected to database (gorm backend)")
	return store.NewGormStore(db), nil
}

func openSQLite3(dsn string) (store.Store, error) {
	if isPostgresDSN(dsn) {
		return nil, fmt.Errorf("sqlite3 backend cannot open a postgres DSN; use STORE_BACKEND=gorm")
	}
	if err := ensureDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := store.NewSQLStore(db)
	if err := s.Migrate(); err != nil {
		return nil, err
	}

	log.Println("Connected to database (sqlite3 backend)")
	return s, nil
}

func isPostgresDSN(dsn string) bool {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return true
	}
	// Key-value form; the fields can appear in any order.
	for _, field := range strings.Fields(dsn) {
		switch strings.SplitN(field, "=", 2)[0] {
		case "host", "user", "password", "dbname", "port", "sslmode":
			return true
		}
	}
	return false
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
