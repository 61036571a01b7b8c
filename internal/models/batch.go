package models

import "github.com/google/uuid"

// BatchInput - пакет из точки и/или показаний движения
type BatchInput struct {
	Location *LocationReading
	Motion   *MotionReading
}

// BatchResult - что из пакета было сохранено. Отсутствующая часть означает,
// что она не передана или нет согласия.
type BatchResult struct {
	Location *BatchLocationResult `json:"location,omitempty"`
	Motion   *BatchMotionResult   `json:"motion,omitempty"`
	Errors   []string             `json:"errors,omitempty"`
}

type BatchLocationResult struct {
	ID      uuid.UUID       `json:"id"`
	Address string          `json:"address"`
	Sample  *LocationSample `json:"-"`
}

type BatchMotionResult struct {
	ID           uuid.UUID     `json:"id"`
	ActivityType string        `json:"activity_type"`
	Confidence   float64       `json:"confidence"`
	Sample       *MotionSample `json:"-"`
}
