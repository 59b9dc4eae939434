package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"feastly/config"
	invoiceRepo "feastly/database/repository/invoice"
	"feastly/models"
	"feastly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitSnapshotWorker runs the async worker in background.
func InitSnapshotWorker(repo invoiceRepo.InvoiceRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeInvoiceSnapshot, handleSnapshotTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[SnapshotWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SnapshotWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SnapshotWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSnapshotTask(repo invoiceRepo.InvoiceRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var snap models.InvoiceSnapshot
		if err := json.Unmarshal(task.Payload(), &snap); err != nil {
			log.Printf("[SnapshotHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[SnapshotHandler] Persisting PDF snapshot for invoice %s", snap.InvoiceID)

		if err := repo.SaveSnapshot(ctx, snap); err != nil {
			log.Printf("[SnapshotHandler] Failed to persist snapshot: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SnapshotWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
