// Package lifecycle holds shared bounds for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single fx OnStart/OnStop hook such as a store ping or server shutdown.
const DefaultTimeout = 10 * time.Second
