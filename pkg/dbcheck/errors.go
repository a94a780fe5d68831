package dbcheck

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToConnectToMongo   = errors.New("failed to connect to mongo")
	ErrFailedToParseRedisURL    = errors.New("failed to parse redis connection string")
	ErrRedisNotReady            = errors.New("redis did not become ready within the given time period")
	ErrNilPool                  = errors.New("nil connection pool")
	ErrNilCollection            = errors.New("nil mongo collection")
	ErrNilLookup                = errors.New("nil inner lookup")
	ErrNilCache                 = errors.New("nil cache")
	ErrLookupFailed             = errors.New("lookup query failed")
)
