// Package lifecycle holds timing defaults shared by server start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop work such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
