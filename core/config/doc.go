// Package config provides configuration management for versync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags on the
// partial configs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the record store
//   - Storage: S3/MinIO credentials and the release bucket
//   - Log: Logging level and format
//   - Product: the managed product's name, archive location and manifest key
//   - Records: record group parent paths, lookup policy and store backing
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Product.BaseName)
package config
