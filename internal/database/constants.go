package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections applies when PoolOptions.MaxConns is not positive
	DefaultMaxConnections = 10

	// PingTimeout bounds the connectivity check in NewPool
	PingTimeout = 5 * time.Second

	// ProbeQuery is the round trip used to verify connectivity
	ProbeQuery = "SELECT 1"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgProbeFailed             = "connectivity probe failed"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
