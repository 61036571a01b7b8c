package models

import (
	"time"

	"github.com/google/uuid"
)

// Vector3 - показания акселерометра по осям
type Vector3 struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// Rotation - углы поворота/ориентации устройства
type Rotation struct {
	Alpha *float64 `json:"alpha"`
	Beta  *float64 `json:"beta"`
	Gamma *float64 `json:"gamma"`
}

// MotionReading - сырые данные DeviceMotion/DeviceOrientation
type MotionReading struct {
	Acceleration                 Vector3  `json:"acceleration"`
	AccelerationIncludingGravity Vector3  `json:"acceleration_including_gravity"`
	RotationRate                 Rotation `json:"rotation_rate"`
	Orientation                  Rotation `json:"orientation"`
}

// IsEmpty сообщает, что не передано ни одного показания
func (m *MotionReading) IsEmpty() bool {
	if m == nil {
		return true
	}
	return m.Acceleration.empty() && m.AccelerationIncludingGravity.empty() &&
		m.RotationRate.empty() && m.Orientation.empty()
}

func (v Vector3) empty() bool  { return v.X == nil && v.Y == nil && v.Z == nil }
func (r Rotation) empty() bool { return r.Alpha == nil && r.Beta == nil && r.Gamma == nil }

// MotionSample - сохраненная запись о движении с результатом классификации
type MotionSample struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Reading      MotionReading `json:"reading"`
	ActivityType string        `json:"activity_type,omitempty"`
	Confidence   float64       `json:"confidence"`
	LocationID   *uuid.UUID    `json:"location_id,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}
