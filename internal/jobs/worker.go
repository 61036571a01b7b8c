package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service"
	"github.com/sirupsen/logrus"
)

var jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "maintenance_jobs_processed_total",
	Help: "Maintenance jobs taken from the queue, by kind and status.",
}, []string{"kind", "status"})

var errUnknownJob = errors.New("unknown job kind")

// Worker забирает задачи обслуживания из очереди и выполняет их
type Worker struct {
	queue       Queue
	tracking    service.TrackingService
	logger      *logrus.Logger
	pollTimeout time.Duration
}

func NewWorker(queue Queue, tracking service.TrackingService, logger *logrus.Logger, pollTimeout time.Duration) *Worker {
	return &Worker{
		queue:       queue,
		tracking:    tracking,
		logger:      logger,
		pollTimeout: pollTimeout,
	}
}

// Start запускает горутину обработки очереди. Останавливается по отмене ctx.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting maintenance worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping maintenance worker.")
				return
			}
			if err := w.poll(ctx); err != nil {
				w.logger.WithError(err).Error("Failed to pop maintenance job from Redis")
				select {
				case <-ctx.Done():
				case <-time.After(w.pollTimeout):
				}
			}
		}
	}()
}

// poll ждет одну задачу не дольше pollTimeout и выполняет ее
func (w *Worker) poll(ctx context.Context) error {
	result, err := w.queue.BRPop(ctx, w.pollTimeout, maintenanceQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	// result[0] - ключ, result[1] - значение
	var job models.MaintenanceJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal maintenance job")
		jobsProcessed.WithLabelValues("invalid", "error").Inc()
		return nil
	}

	if err := w.handle(ctx, job); err != nil {
		w.logger.WithError(err).WithField("kind", job.Kind).Error("Maintenance job failed")
	}
	return nil
}

func (w *Worker) handle(ctx context.Context, job models.MaintenanceJob) error {
	log := w.logger.WithFields(logrus.Fields{"kind": job.Kind, "enqueued_at": job.EnqueuedAt})
	log.Debug("Processing maintenance job...")

	var err error
	switch job.Kind {
	case models.JobRetryGeocoding:
		var res *models.RetryResult
		if res, err = w.tracking.RetryFailedGeocoding(ctx, job.UserID, job.Limit); err == nil {
			log.WithFields(logrus.Fields{
				"processed":    res.Processed,
				"successful":   res.Successful,
				"still_failed": res.StillFailed,
			}).Info("Geocoding retry finished")
		}
	case models.JobCleanup:
		var res *models.CleanupResult
		if res, err = w.tracking.CleanupOldData(ctx, job.Days); err == nil {
			log.WithFields(logrus.Fields{
				"deleted_locations": res.DeletedLocations,
				"deleted_motions":   res.DeletedMotions,
			}).Info("Cleanup finished")
		}
	default:
		err = fmt.Errorf("%w: %q", errUnknownJob, job.Kind)
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	jobsProcessed.WithLabelValues(string(job.Kind), status).Inc()
	return err
}
