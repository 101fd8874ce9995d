package bootstrap

import (
	"context"
	"log/slog"

	"fairway/internal/pkg/config"
	"fairway/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the periodic scrape cycle and the nightly retention
// sweep on cron schedules tied to the fx lifecycle.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, scrape commands.ScrapeCommands, sweep commands.SweepCommands, logger *slog.Logger) error {
	c := cron.New()

	_, err := c.AddFunc(cfg.Scrape.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Scrape.Timeout)
		defer cancel()
		if _, err := scrape.RunCycle(ctx); err != nil {
			logger.Error("scheduled scrape cycle failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}

	_, err = c.AddFunc(cfg.Scrape.SweepCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Scrape.Timeout)
		defer cancel()
		if _, err := sweep.Sweep(ctx, cfg.Scrape.RetentionDays); err != nil {
			logger.Error("scheduled retention sweep failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("scheduler started",
				"scrape_cron", cfg.Scrape.CronSpec,
				"sweep_cron", cfg.Scrape.SweepCronSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
