package cmd

import "time"

// Config carries the process configuration resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OracleHost is the base URL of the route oracle service.
	OracleHost string

	// OracleTimeout bounds every oracle call. Zero means the client default.
	OracleTimeout time.Duration

	// OracleServiceToken is the service-level credential the background
	// refresh forwards to the oracle's delivery lookup. Optional; when empty
	// the delivery refresh only happens on driver requests.
	OracleServiceToken string
}
