package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Lookup misses and rendering anomalies are never
// reported as errors; only startup-time and infrastructure failures are.
var (
	// Construction
	ErrNilStore       = errors.New("translation store is required")
	ErrNilRedisClient = errors.New("redis client is required")

	// Preload operations
	ErrFailedToReadPath  = errors.New("failed to read translation path")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")

	// Redis store operations
	ErrFailedToMarshalTable   = errors.New("failed to marshal translation table")
	ErrFailedToUnmarshalTable = errors.New("failed to unmarshal translation table")
)
