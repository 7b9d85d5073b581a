package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/metrics"
	"jobtrack/internal/model"
	"jobtrack/internal/tasks"
	"jobtrack/internal/worker"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Println("database connection ready for worker")

	redisAddr := cfg.Redis.Addr()
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
	})

	reminderHandler := worker.NewReminderTaskHandler(
		db,
		redisClient,
		logger,
		model.UTCClock,
		cfg.Reminders.StaleAfterDays,
	)

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMetricsMiddleware())
	mux.Handle(tasks.TypeReminderScan, reminderHandler)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	cronspec := fmt.Sprintf("@every %dh", cfg.Reminders.ScanIntervalHours)
	task, err := tasks.NewReminderScanTask(uuid.NewString())
	if err != nil {
		log.Fatalf("build reminder scan task: %v", err)
	}
	if _, err := scheduler.Register(cronspec, task); err != nil {
		log.Fatalf("register reminder scan schedule: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	logger.Info("worker service started",
		slog.String("redis_addr", redisAddr),
		slog.String("scan_schedule", cronspec),
	)
	if err := server.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
	}
}
