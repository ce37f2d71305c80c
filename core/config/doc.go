// Package config provides configuration management for the sync pipeline.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Log: logging level and format
//   - Server: serve-mode API settings (port, API key)
//   - Database: run-history MySQL connection details
//   - Storage: S3/MinIO credentials for the s3 feed source
//   - Feed: supplier feed source, archive, and workbook layout
//   - Ozon / Market: marketplace credentials, endpoints, and batch limits
//   - Sync: cron schedule for serve mode
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ozon.StockBatchLimit)
package config
