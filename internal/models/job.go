package models

import (
	"time"

	"github.com/google/uuid"
)

// JobKind - тип фоновой задачи обслуживания
type JobKind string

const (
	JobRetryGeocoding JobKind = "retry_geocoding"
	JobCleanup        JobKind = "cleanup"
)

// MaintenanceJob - задача, выполняемая воркером вне запроса
type MaintenanceJob struct {
	Kind       JobKind    `json:"kind"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Limit      int        `json:"limit,omitempty"`
	Days       int        `json:"days,omitempty"`
	EnqueuedAt time.Time  `json:"enqueued_at"`
}
