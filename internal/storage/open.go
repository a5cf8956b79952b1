package storage

import (
	"fmt"
	"strings"

	"github.com/themonkeyd/devmeetingbot/internal/database"
	"github.com/themonkeyd/devmeetingbot/internal/domain/contract"
	"github.com/themonkeyd/devmeetingbot/migrator/sqlite"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

type Config struct {
	Driver       string
	DataFile     string // json driver
	DatabasePath string // sqlite driver
}

// Open constructs the state store for the configured driver. The sqlite
// driver runs schema migrations before handing the store out.
func Open(cfg Config) (contract.StateStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverJSON:
		return newFileStore(cfg.DataFile)

	case DriverSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return database.NewStateRepo(db), nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
}
