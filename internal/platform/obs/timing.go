package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time logs the duration of an operation through the logger carried by ctx,
// which already holds the request id for HTTP calls. Use as:
//
//	defer obs.Time(ctx, "simulation.Run")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().
				Str("op", name).
				Int64("dur_ms", dur.Milliseconds()).
				Err(*errp).
				Msg("operation failed")
			return
		}
		logger.Debug().
			Str("op", name).
			Int64("dur_ms", dur.Milliseconds()).
			Msg("operation completed")
	}
}
