// Package database handles the MySQL connection used by the database catalog backend.
//
// It wraps GORM to configure MySQL connections from the application's
// configuration and offers a small schema inspector so a misconfigured table
// is reported clearly instead of failing deep inside a query.
//
// # Connect
//
// Connect builds the DSN (URL-encoding credentials), applies connection and
// I/O timeouts and pings the server before returning.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table via SHOW COLUMNS;
// RequireColumns checks that a table carries the columns a catalog needs.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	err = database.RequireColumns(ctx, db, "translations", database.TranslationColumns...)
package database
