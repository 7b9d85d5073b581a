package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jobtrack/internal/errcode"
	"jobtrack/internal/model"
	"jobtrack/internal/tasks"
)

// ReminderTaskHandler consumes reminder scan tasks. A scan finds
// applications sitting in a waiting status with no activity for longer
// than the configured window and publishes a per-user digest over Redis
// Pub/Sub, where the WebSocket handler picks it up.
type ReminderTaskHandler struct {
	db             *gorm.DB
	redisClient    *redis.Client
	logger         *slog.Logger
	clock          model.Clock
	staleAfterDays int
}

// NewReminderTaskHandler creates the task handler.
func NewReminderTaskHandler(
	db *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
	clock model.Clock,
	staleAfterDays int,
) *ReminderTaskHandler {
	return &ReminderTaskHandler{
		db:             db,
		redisClient:    redisClient,
		logger:         logger,
		clock:          clock,
		staleAfterDays: staleAfterDays,
	}
}

// Statuses that count as waiting on the employer.
var waitingStatuses = []model.JobStatus{
	model.StatusApplied,
	model.StatusWaitingResponse,
	model.StatusWaitingJobOffer,
}

// ProcessTask implements asynq.Handler.
func (h *ReminderTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ReminderScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.String("correlation_id", payload.CorrelationID))
	log.Info("starting reminder scan")

	now := h.clock.Now().UTC()
	cutoff := now.AddDate(0, 0, -h.staleAfterDays)

	// An application is stale when its last activity, the update time or
	// the creation time when it was never updated, predates the cutoff.
	var stale []model.JobApply
	err := h.db.WithContext(ctx).
		Where("status IN ?", waitingStatuses).
		Where("COALESCE(updated_at, created_at) < ?", cutoff).
		Order("user_id").
		Find(&stale).Error
	if err != nil {
		log.Error("query stale applications failed", slog.Any("error", err))
		return err
	}

	if len(stale) == 0 {
		log.Info("reminder scan found nothing stale")
		return nil
	}

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}
		log.Error("reminder scan giving up", slog.Any("error", retErr))
	}()

	byUser := make(map[uint][]ReminderItem)
	for _, job := range stale {
		lastActivity := job.CreatedAt
		if job.UpdatedAt != nil {
			lastActivity = *job.UpdatedAt
		}
		byUser[job.UserID] = append(byUser[job.UserID], ReminderItem{
			JobApplyID:  job.ID,
			CompanyName: job.CompanyName,
			JobTitle:    job.JobRole,
			Status:      job.Status.String(),
			DaysStale:   int(now.Sub(lastActivity).Hours() / 24),
		})
	}

	for userID, items := range byUser {
		notify := ReminderNotifyMessage{
			Status:        "reminder",
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.OK,
			Reminders:     items,
		}
		if err := h.publishReminderNotify(ctx, userID, notify); err != nil {
			log.Error("publish reminder notification failed",
				slog.Uint64("user_id", uint64(userID)),
				slog.Any("error", err),
			)
			return err
		}
	}

	log.Info("reminder scan finished",
		slog.Int("stale_applications", len(stale)),
		slog.Int("notified_users", len(byUser)),
		slog.Duration("window", time.Duration(h.staleAfterDays)*24*time.Hour),
	)
	return nil
}

func (h *ReminderTaskHandler) publishReminderNotify(ctx context.Context, userID uint, notify ReminderNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
