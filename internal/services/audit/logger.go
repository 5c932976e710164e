package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/internal/infrastructure/spool"
	"github.com/planly/backend/repository"
)

// Logger appends immutable activity entries. Logging is advisory: a
// failed append is spooled for replay and reported, never surfaced to
// the mutation that triggered it.
type Logger struct {
	entries repository.ActivityRepository
	spool   *spool.Store
	log     *zap.Logger
}

// New builds an audit logger. The spool may be nil; failed appends are
// then only reported.
func New(entries repository.ActivityRepository, store *spool.Store, logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{
		entries: entries,
		spool:   store,
		log:     logger,
	}
}

// Log records one action against a task. Callers are expected to skip
// the call entirely for empty diffs.
func (l *Logger) Log(ctx context.Context, taskID, action string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		l.log.Error("activity payload not serializable",
			zap.String("task_id", taskID),
			zap.String("action", action),
			zap.Error(err))
		return
	}

	entry := &domain.ActivityEntry{
		TaskID:  taskID,
		Action:  action,
		Payload: body,
	}
	appendErr := l.entries.Append(ctx, entry)
	if appendErr == nil {
		return
	}
	l.log.Warn("activity append failed, spooling",
		zap.String("task_id", taskID),
		zap.String("action", action),
		zap.Error(appendErr))

	if l.spool == nil {
		return
	}
	if err := l.spool.Enqueue(spool.Entry{
		TaskID:  taskID,
		Action:  action,
		Payload: body,
	}); err != nil {
		l.log.Error("activity spool failed", zap.String("task_id", taskID), zap.Error(err))
	}
}
