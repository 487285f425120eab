// Package lifecycle holds shared start and stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
