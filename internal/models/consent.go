package models

import (
	"time"

	"github.com/google/uuid"
)

// ConsentKind - вид согласия пользователя на сбор данных
type ConsentKind string

const (
	ConsentGPS            ConsentKind = "gps"
	ConsentNotifications  ConsentKind = "notifications"
	ConsentMotionActivity ConsentKind = "motion_activity"
)

// ConsentRecord хранит флаги согласия пользователя. Одна запись на пользователя.
type ConsentRecord struct {
	UserID         uuid.UUID `json:"user_id"`
	GPS            bool      `json:"gps"`
	Notifications  bool      `json:"notifications"`
	MotionActivity bool      `json:"motion_activity"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Allows сообщает, выдано ли согласие указанного вида
func (c *ConsentRecord) Allows(kind ConsentKind) bool {
	if c == nil {
		return false
	}
	switch kind {
	case ConsentGPS:
		return c.GPS
	case ConsentNotifications:
		return c.Notifications
	case ConsentMotionActivity:
		return c.MotionActivity
	}
	return false
}

// ConsentUpdate - частичное обновление; nil означает "не менять"
type ConsentUpdate struct {
	GPS            *bool
	Notifications  *bool
	MotionActivity *bool
}
