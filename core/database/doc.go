// Package database handles the MySQL connection for the sync history store.
//
// It provides a wrapper around GORM to configure the connection from the
// application's configuration, with conservative pool limits and an upfront
// ping so the caller can disable history cleanly when no database is
// reachable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("history disabled", err)
//	}
package database
