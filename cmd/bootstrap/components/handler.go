package components

import (
	"fairway/internal/handler"
	"fairway/internal/handler/api"
	"fairway/internal/pkg/clock"
	"fairway/internal/pkg/config"
	"fairway/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTeeTimeHandler,
		api.NewBookkeepingHandler,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, cfg.RateLimit.MaxKeys, clk)
}
