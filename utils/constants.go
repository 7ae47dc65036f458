// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for reschedule session cache keys.
const SessionCachePrefix = "resched:"

// SessionCacheTTL is the time-to-live for an in-progress reschedule session.
const SessionCacheTTL = 10 * time.Minute

// ScheduleCachePrefix is the prefix for cached schedule listings.
const ScheduleCachePrefix = "schedules:"

// ScheduleCacheGenKey tracks the current schedule cache generation; every
// confirmed mutation bumps it, invalidating all cached listings at once.
const ScheduleCacheGenKey = "schedules:gen"

// ScheduleCacheTTL is the time-to-live for cached schedule listings.
const ScheduleCacheTTL = 5 * time.Minute
