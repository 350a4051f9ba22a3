package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/stpnv0/RoomBooker/internal/handler/dto"
	"github.com/stpnv0/RoomBooker/internal/router"
	"github.com/wb-go/wbf/logger"
)

func Recovery(log logger.Logger) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context, in dto.Intent) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.LogAttrs(ctx, logger.ErrorLevel, "panic recovered",
						logger.Any("error", r),
						logger.String("intent", string(in.Type)),
						logger.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("intent %s: panic: %v", in.Type, r)
				}
			}()

			return next(ctx, in)
		}
	}
}
