// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived resources.
const DefaultTimeout = 15 * time.Second
