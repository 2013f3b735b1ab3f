package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a remote project store base URL
//	-request-timeout outbound request timeout (e.g. "15s")
//	-token bearer token for the remote store
//	-page-limit projects per page
//	-storage cache backend: sqlite, file or memory
//	-d SQLite DSN
//	-f JSON cache file path
//	-refresh-interval background refresh interval, 0 disables it
//	-log-file client log file path
//	-log-level client log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*ClientConfig, error) {
	var (
		address         string
		requestTimeout  time.Duration
		token           string
		pageLimit       int
		backend         string
		databaseDSN     string
		filePath        string
		refreshInterval time.Duration
		logFile         string
		logLevel        string
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("project-pilot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Remote project store base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.IntVar(&pageLimit, "page-limit", 0, "Projects per page")
	fs.StringVar(&backend, "storage", "", "Cache backend: sqlite, file or memory")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&filePath, "f", "", "JSON cache file path")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (0 disables)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		App: App{PageLimit: pageLimit},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			File:    File{Path: filePath},
		},
		Workers: Workers{RefreshInterval: refreshInterval},
		Logging: Logging{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
