package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/shenikar/travel_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeQueue отдает заранее заданный ответ BRPOP и запоминает LPUSH
type fakeQueue struct {
	pushed  map[string][]string
	pushErr error
	popVal  []string
	popErr  error
}

func (q *fakeQueue) LPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	if q.pushErr != nil {
		return redis.NewIntResult(0, q.pushErr)
	}
	if q.pushed == nil {
		q.pushed = make(map[string][]string)
	}
	for _, v := range values {
		q.pushed[key] = append(q.pushed[key], string(v.([]byte)))
	}
	return redis.NewIntResult(int64(len(q.pushed[key])), nil)
}

func (q *fakeQueue) BRPop(_ context.Context, _ time.Duration, _ ...string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(q.popVal, q.popErr)
}

func newTestWorker(t *testing.T, queue Queue) (*Worker, *mocks.MockTrackingService) {
	ctrl := gomock.NewController(t)
	tracking := mocks.NewMockTrackingService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewWorker(queue, tracking, logger, 10*time.Millisecond), tracking
}

func TestPublish(t *testing.T) {
	queue := &fakeQueue{}
	publisher := NewRedisPublisher(queue)
	userID := uuid.New()

	err := publisher.Publish(context.Background(), models.MaintenanceJob{
		Kind:   models.JobRetryGeocoding,
		UserID: &userID,
		Limit:  20,
	})
	require.NoError(t, err)

	require.Len(t, queue.pushed[maintenanceQueueKey], 1)
	var job models.MaintenanceJob
	require.NoError(t, json.Unmarshal([]byte(queue.pushed[maintenanceQueueKey][0]), &job))
	assert.Equal(t, models.JobRetryGeocoding, job.Kind)
	assert.Equal(t, &userID, job.UserID)
	assert.Equal(t, 20, job.Limit)
}

func TestPublish_RedisError(t *testing.T) {
	publisher := NewRedisPublisher(&fakeQueue{pushErr: errors.New("connection refused")})

	err := publisher.Publish(context.Background(), models.MaintenanceJob{Kind: models.JobCleanup, Days: 30})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish maintenance job")
}

func TestHandle_RetryGeocoding(t *testing.T) {
	worker, tracking := newTestWorker(t, &fakeQueue{})
	userID := uuid.New()

	tracking.EXPECT().
		RetryFailedGeocoding(gomock.Any(), &userID, 50).
		Return(&models.RetryResult{Processed: 3, Successful: 2, StillFailed: 1}, nil)

	err := worker.handle(context.Background(), models.MaintenanceJob{Kind: models.JobRetryGeocoding, UserID: &userID, Limit: 50})
	assert.NoError(t, err)
}

func TestHandle_Cleanup(t *testing.T) {
	worker, tracking := newTestWorker(t, &fakeQueue{})

	tracking.EXPECT().CleanupOldData(gomock.Any(), 14).Return(&models.CleanupResult{DeletedLocations: 10, DeletedMotions: 4}, nil)

	err := worker.handle(context.Background(), models.MaintenanceJob{Kind: models.JobCleanup, Days: 14})
	assert.NoError(t, err)
}

func TestHandle_ServiceError(t *testing.T) {
	worker, tracking := newTestWorker(t, &fakeQueue{})

	tracking.EXPECT().CleanupOldData(gomock.Any(), 7).Return(nil, errors.New("db down"))

	err := worker.handle(context.Background(), models.MaintenanceJob{Kind: models.JobCleanup, Days: 7})
	assert.EqualError(t, err, "db down")
}

func TestHandle_UnknownKind(t *testing.T) {
	worker, _ := newTestWorker(t, &fakeQueue{})

	err := worker.handle(context.Background(), models.MaintenanceJob{Kind: "reindex"})
	assert.ErrorIs(t, err, errUnknownJob)
}

func TestPoll_DispatchesJob(t *testing.T) {
	payload, err := json.Marshal(models.MaintenanceJob{Kind: models.JobCleanup, Days: 30})
	require.NoError(t, err)
	worker, tracking := newTestWorker(t, &fakeQueue{popVal: []string{maintenanceQueueKey, string(payload)}})

	tracking.EXPECT().CleanupOldData(gomock.Any(), 30).Return(&models.CleanupResult{}, nil)

	assert.NoError(t, worker.poll(context.Background()))
}

func TestPoll_Timeout(t *testing.T) {
	worker, _ := newTestWorker(t, &fakeQueue{popErr: redis.Nil})

	assert.NoError(t, worker.poll(context.Background()))
}

func TestPoll_InvalidPayload(t *testing.T) {
	worker, _ := newTestWorker(t, &fakeQueue{popVal: []string{maintenanceQueueKey, "{not json"}})

	assert.NoError(t, worker.poll(context.Background()))
}

func TestPoll_RedisError(t *testing.T) {
	worker, _ := newTestWorker(t, &fakeQueue{popErr: errors.New("connection reset")})

	assert.EqualError(t, worker.poll(context.Background()), "connection reset")
}
