package middleware

import (
	"context"
	"time"

	"github.com/stpnv0/RoomBooker/internal/handler/dto"
	"github.com/stpnv0/RoomBooker/internal/router"
	"github.com/wb-go/wbf/logger"
)

func IntentLogger(log logger.Logger) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context, in dto.Intent) error {
			start := time.Now()
			err := next(ctx, in)

			if err != nil {
				log.LogAttrs(ctx, logger.WarnLevel, "intent failed",
					logger.String("intent", string(in.Type)),
					logger.String("booking_id", in.BookingID),
					logger.Duration("took", time.Since(start)),
					logger.String("error", err.Error()),
				)
				return err
			}

			log.LogAttrs(ctx, logger.DebugLevel, "intent handled",
				logger.String("intent", string(in.Type)),
				logger.Duration("took", time.Since(start)),
			)
			return nil
		}
	}
}
