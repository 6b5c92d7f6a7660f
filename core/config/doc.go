// Package config provides configuration management for the Prefab Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the sync history store
//   - Storage: S3/MinIO credentials and bucket settings
//   - Assets: prefab library location (file directory or bucket prefix)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
