// File: utils/constants.go
package utils

import "time"

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "booking:session:"

// ContentCachePrefix is the prefix used for Redis content cache keys.
const ContentCachePrefix = "content:"

// HealthCheckInterval is how often dependencies are probed.
const HealthCheckInterval = 60 * time.Second
