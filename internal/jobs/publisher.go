package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_tracking_system/internal/models"
)

const (
	maintenanceQueueKey = "maintenance_jobs"
)

// Queue - команды Redis, нужные очереди задач. Реализуется *redis.Client.
type Queue interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// RedisPublisher ставит задачи обслуживания в очередь Redis
type RedisPublisher struct {
	queue Queue
}

func NewRedisPublisher(queue Queue) *RedisPublisher {
	return &RedisPublisher{queue: queue}
}

// Publish кладет задачу в левую часть списка; воркер забирает справа
func (p *RedisPublisher) Publish(ctx context.Context, job models.MaintenanceJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal maintenance job: %w", err)
	}

	if err := p.queue.LPush(ctx, maintenanceQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish maintenance job to Redis: %w", err)
	}
	return nil
}
