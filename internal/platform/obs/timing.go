package obs

import (
	"context"
	"time"
)

// Time starts a timer for op and returns a function that logs its
// duration and outcome. Call it deferred with a pointer to the named error.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := FromContext(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn("op failed", "op", name, "dur", dur.Round(time.Microsecond), "err", *errp)
			return
		}
		logger.Debug("op done", "op", name, "dur", dur.Round(time.Microsecond))
	}
}
