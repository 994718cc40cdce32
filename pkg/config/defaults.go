package config

import "time"

const (
	DefaultMongoDatabase    = "tripPlanner"
	DefaultMongoConnTimeout = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultSessionTTL       = 24 * time.Hour
	DefaultKafkaEventsTopic = "trip-planner.entity-events"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// GoogleCallbackPath is fixed; Google must be configured with the same value.
const GoogleCallbackPath = "/auth/google/callback"
