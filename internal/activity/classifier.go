// Package activity определяет тип активности пользователя по данным
// акселерометра и скорости из GPS. Правила проверяются по порядку,
// срабатывает первое подходящее.
package activity

import (
	"math"

	"github.com/shenikar/travel_tracking_system/internal/models"
)

// Type - тип активности
type Type string

const (
	Unknown    Type = "unknown"
	Stationary Type = "stationary"
	Walking    Type = "walking"
	Running    Type = "running"
	Cycling    Type = "cycling"
	Driving    Type = "driving"
)

const (
	stationaryAccel = 0.5
	walkingAccel    = 1.0
	runningAccel    = 3.0
	cyclingSpeedKmh = 15.0
	drivingSpeedKmh = 50.0
	msToKmh         = 3.6
)

// Classify возвращает тип активности и уверенность в диапазоне [0, 1].
// location может быть nil; отсутствующие оси ускорения считаются нулем.
func Classify(motion *models.MotionReading, location *models.LocationReading) (Type, float64) {
	if motion.IsEmpty() {
		return Unknown, 0.0
	}

	acc := motion.Acceleration
	magnitude := math.Sqrt(sq(acc.X) + sq(acc.Y) + sq(acc.Z))

	speedKmh := 0.0
	if location != nil && location.Speed != nil {
		speedKmh = *location.Speed * msToKmh
	}

	switch {
	case magnitude < stationaryAccel:
		return Stationary, 0.8
	case speedKmh > drivingSpeedKmh:
		return Driving, 0.9
	case speedKmh > cyclingSpeedKmh:
		return Cycling, 0.7
	case magnitude > runningAccel:
		return Running, 0.8
	case magnitude > walkingAccel:
		return Walking, 0.7
	default:
		return Stationary, 0.6
	}
}

func sq(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v * *v
}
