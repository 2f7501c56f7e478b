package ports

import (
	"context"
	"time"
)

// SleeperPort pauses a user between scripted steps.
type SleeperPort interface {
	Sleep(ctx context.Context, d time.Duration)
}

// ProgressPort is notified as simulated users finish. Implementations must be
// safe for concurrent use.
type ProgressPort interface {
	Start(total int)
	Increment()
	Stop()
}
