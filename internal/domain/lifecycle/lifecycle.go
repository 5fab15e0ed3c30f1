// Package lifecycle holds shared constants for component start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
