// Package store opens the report database for the command line tools using
// the same environment as the API server.
package store

import (
	"github.com/mshenoda/connect4/internal/config"
	"github.com/mshenoda/connect4/internal/repository/sqlstore"
)

func Open() (*sqlstore.ReportRepo, func(), error) {
	cfg := config.LoadConfig()
	db, err := sqlstore.Open(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
	if err != nil {
		return nil, nil, err
	}
	return sqlstore.NewReportRepo(db), func() { db.Close() }, nil
}
