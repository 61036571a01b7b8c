package activity

import (
	"testing"

	"github.com/shenikar/travel_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func accel(x, y, z float64) *models.MotionReading {
	return &models.MotionReading{Acceleration: models.Vector3{X: f(x), Y: f(y), Z: f(z)}}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		motion     *models.MotionReading
		location   *models.LocationReading
		wantType   Type
		wantConfid float64
	}{
		{"no motion data", nil, nil, Unknown, 0.0},
		{"empty motion reading", &models.MotionReading{}, nil, Unknown, 0.0},
		{"zero acceleration", accel(0, 0, 0), nil, Stationary, 0.8},
		// низкое ускорение проверяется раньше скорости
		{"zero acceleration at highway speed", accel(0, 0, 0), &models.LocationReading{Speed: f(20)}, Stationary, 0.8},
		{"driving", accel(0.6, 0, 0), &models.LocationReading{Speed: f(20)}, Driving, 0.9},
		{"cycling", accel(0.6, 0, 0), &models.LocationReading{Speed: f(5)}, Cycling, 0.7},
		{"below driving threshold", accel(0.6, 0, 0), &models.LocationReading{Speed: f(13)}, Cycling, 0.7},
		{"running", accel(2, 2, 2), nil, Running, 0.8},
		{"walking", accel(1, 1, 0), nil, Walking, 0.7},
		{"low movement", accel(0.7, 0, 0), nil, Stationary, 0.6},
		{"location without speed", accel(1, 1, 0), &models.LocationReading{Latitude: 10}, Walking, 0.7},
		{
			"missing axes treated as zero",
			&models.MotionReading{Acceleration: models.Vector3{X: f(4)}},
			nil,
			Running, 0.8,
		},
		{
			"only orientation present",
			&models.MotionReading{Orientation: models.Rotation{Alpha: f(90)}},
			nil,
			Stationary, 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotConfidence := Classify(tt.motion, tt.location)
			assert.Equal(t, tt.wantType, gotType)
			assert.InDelta(t, tt.wantConfid, gotConfidence, 1e-9)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	motion := accel(1.5, 0.3, 0.2)
	location := &models.LocationReading{Speed: f(3)}

	firstType, firstConfidence := Classify(motion, location)
	for i := 0; i < 10; i++ {
		gotType, gotConfidence := Classify(motion, location)
		assert.Equal(t, firstType, gotType)
		assert.Equal(t, firstConfidence, gotConfidence)
	}
}
