package courses

import (
	"context"
	"senehorario-service/internal/app/config"
	"senehorario-service/internal/app/contracts"
	"senehorario-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Warmer periodically re-runs recently seen course searches so popular cache
// entries stay fresh past their TTL.
type Warmer struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	courseUsecase contracts.CourseUsecase
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewWarmer(log *zap.Logger, cfg *config.InternalConfig, lockerService contracts.LockerService, courseUsecase contracts.CourseUsecase) *Warmer {
	return &Warmer{log: log, cfg: cfg, locker: lockerService, courseUsecase: courseUsecase}
}

// Start begins the periodic loop using the configured cron spec.
func (w *Warmer) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.CacheWarmerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("cache.warmer: failed to schedule with provided cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels any in-flight run and waits for the cron to drain.
func (w *Warmer) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Warmer) runOnce(ctx context.Context) {
	// Leader lock so only one instance warms; TTL is independent of the
	// cron cadence and kept alive by the refresher below.
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyWarmerLeaderLock, ttl)
	if err != nil {
		w.log.Warn("cache.warmer: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("cache.warmer: leader lock not acquired; another instance is warming")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyWarmerLeaderLock, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.RedisKeyWarmerLeaderLock, token, ttl); err != nil {
					w.log.Warn("cache.warmer: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	searches, err := w.courseUsecase.RecentSearches(ctx)
	if err != nil {
		w.log.Warn("cache.warmer: failed to read recent searches", zap.Error(err))
		return
	}
	if len(searches) == 0 {
		w.log.Info("cache.warmer: no recent searches to refresh")
		return
	}

	refreshed := 0
	for _, name := range searches {
		if ctx.Err() != nil {
			w.log.Info("cache.warmer: run cancelled", zap.Int(constvars.LoggingCourseCountKey, refreshed))
			return
		}
		if err := w.courseUsecase.RefreshSearch(ctx, name); err != nil {
			w.log.Warn("cache.warmer: failed to refresh search",
				zap.String(constvars.LoggingCourseNameKey, name),
				zap.Error(err),
			)
			continue
		}
		refreshed++
	}

	w.log.Info("cache.warmer: finished refreshing searches", zap.Int(constvars.LoggingCourseCountKey, refreshed))
}
