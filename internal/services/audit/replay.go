package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/internal/infrastructure/spool"
	"github.com/planly/backend/repository"
)

// ReplayConfig controls how frequently the spool is drained.
type ReplayConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// Replayer moves spooled activity entries back into the primary store.
type Replayer struct {
	store   *spool.Store
	entries repository.ActivityRepository
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     ReplayConfig
}

func NewReplayer(store *spool.Store, entries repository.ActivityRepository, logger *zap.Logger, cfg ReplayConfig) *Replayer {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Replayer{
		store:   store,
		entries: entries,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := r.Drain(ctx); err != nil {
			r.logger.Error("audit spool drain failed", zap.Error(err))
		}
	})

	return r
}

// Start launches the replay scheduler.
func (r *Replayer) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("audit replayer started")
}

// Stop gracefully stops the scheduler.
func (r *Replayer) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("audit replayer stopped")
}

// Drain replays spooled entries synchronously. Entries whose task has
// since been deleted fail the cascade foreign key and are dropped after
// the retry budget; the audit trail for a deleted task is gone anyway.
func (r *Replayer) Drain(ctx context.Context) error {
	if r == nil || r.store == nil {
		return nil
	}

	batch, err := r.store.GetBatch(r.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range batch {
		entry := &domain.ActivityEntry{
			ID:        item.ID,
			TaskID:    item.TaskID,
			Action:    item.Action,
			Payload:   item.Payload,
			CreatedAt: item.CreatedAt,
		}
		if err := r.entries.Append(ctx, entry); err != nil {
			r.logger.Warn("audit replay failed",
				zap.String("entry_id", item.ID),
				zap.String("action", item.Action),
				zap.Error(err))

			item.Retries++
			if err := r.store.Remove(item); err != nil {
				r.logger.Warn("failed to remove spooled entry", zap.Error(err))
				continue
			}
			if item.Retries >= r.cfg.MaxRetries {
				r.logger.Warn("dropping spooled entry (max retries reached)", zap.String("entry_id", item.ID))
				continue
			}
			if err := r.store.Requeue(item); err != nil {
				r.logger.Error("failed to requeue spooled entry", zap.Error(err))
			}
			continue
		}

		if err := r.store.Remove(item); err != nil {
			r.logger.Warn("failed to purge replayed entry", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of spooled entries.
func (r *Replayer) Size() int {
	if r == nil || r.store == nil {
		return 0
	}
	size, err := r.store.Size()
	if err != nil {
		return 0
	}
	return size
}
