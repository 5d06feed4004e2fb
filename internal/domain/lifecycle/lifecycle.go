// Package lifecycle holds shared start/stop timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of delivery surfaces.
const DefaultTimeout = 10 * time.Second
