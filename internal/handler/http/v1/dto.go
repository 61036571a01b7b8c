package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
)

// LocationRequest DTO GPS точки
// @Description DTO GPS точки
type LocationRequest struct {
	Latitude         *float64 `json:"latitude" validate:"required,latitude"`
	Longitude        *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy         *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Altitude         *float64 `json:"altitude,omitempty"`
	AltitudeAccuracy *float64 `json:"altitude_accuracy,omitempty" validate:"omitempty,gte=0"`
	Heading          *float64 `json:"heading,omitempty" validate:"omitempty,gte=0,lte=360"`
	Speed            *float64 `json:"speed,omitempty" validate:"omitempty,gte=0"`
	// ResolveAddress по умолчанию true
	ResolveAddress *bool `json:"resolve_address,omitempty"`
}

type VectorDTO struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

type RotationDTO struct {
	Alpha *float64 `json:"alpha,omitempty"`
	Beta  *float64 `json:"beta,omitempty"`
	Gamma *float64 `json:"gamma,omitempty"`
}

// MotionRequest DTO показаний акселерометра и гироскопа
// @Description DTO показаний акселерометра и гироскопа
type MotionRequest struct {
	Acceleration                 *VectorDTO   `json:"acceleration,omitempty"`
	AccelerationIncludingGravity *VectorDTO   `json:"acceleration_including_gravity,omitempty"`
	RotationRate                 *RotationDTO `json:"rotation_rate,omitempty"`
	Orientation                  *RotationDTO `json:"orientation,omitempty"`
}

// BatchRequest DTO пакета данных
// @Description DTO пакета из точки и/или показаний движения
type BatchRequest struct {
	Location *LocationRequest `json:"location,omitempty"`
	Motion   *MotionRequest   `json:"motion,omitempty"`
}

// ConsentRequest DTO частичного обновления согласия
// @Description DTO частичного обновления согласия
type ConsentRequest struct {
	GPS            *bool `json:"gps,omitempty"`
	Notifications  *bool `json:"notifications,omitempty"`
	MotionActivity *bool `json:"motion_activity,omitempty"`
}

// ConsentOverrideRequest DTO изменения согласия администратором
// @Description DTO изменения согласия администратором
type ConsentOverrideRequest struct {
	ConsentRequest
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// CreateTripRequest DTO создания поездки
// @Description DTO создания поездки
type CreateTripRequest struct {
	TripNumber             string    `json:"trip_number,omitempty" validate:"omitempty,max=32"`
	Origin                 string    `json:"origin" validate:"required,max=255"`
	Destination            string    `json:"destination" validate:"required,max=255"`
	StartTime              time.Time `json:"start_time" validate:"required"`
	EndTime                time.Time `json:"end_time" validate:"required,gtefield=StartTime"`
	ModeOfTravel           string    `json:"mode_of_travel" validate:"required,max=50"`
	VehicleType            string    `json:"vehicle_type,omitempty" validate:"max=100"`
	FuelType               string    `json:"fuel_type,omitempty" validate:"max=50"`
	AccompanyingTravellers []string  `json:"accompanying_travellers,omitempty" validate:"omitempty,dive,max=255"`
}

// BulkDeleteRequest DTO массового удаления пользователей
// @Description DTO массового удаления пользователей
type BulkDeleteRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1,max=500"`
}

// RetryGeocodingRequest DTO постановки повторного геокодирования
// @Description DTO постановки повторного геокодирования
type RetryGeocodingRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Limit  int        `json:"limit,omitempty" validate:"gte=0,lte=1000"`
}

// CleanupRequest DTO постановки очистки устаревших данных
// @Description DTO постановки очистки устаревших данных
type CleanupRequest struct {
	Days int `json:"days,omitempty" validate:"gte=0"`
}

// LocationResponse DTO ответа с сохраненной точкой
// @Description DTO ответа с сохраненной точкой
type LocationResponse struct {
	Message  string                 `json:"message"`
	Location *models.LocationSample `json:"location"`
}

// DetectedActivity - результат классификации
type DetectedActivity struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// MotionResponse DTO ответа с сохраненным движением
// @Description DTO ответа с сохраненным движением
type MotionResponse struct {
	Message          string               `json:"message"`
	Motion           *models.MotionSample `json:"motion"`
	DetectedActivity DetectedActivity     `json:"detected_activity"`
}

type BatchLocationResponse struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
}

type BatchMotionResponse struct {
	ID       uuid.UUID        `json:"id"`
	Activity DetectedActivity `json:"activity"`
}

type BatchResultResponse struct {
	Location *BatchLocationResponse `json:"location,omitempty"`
	Motion   *BatchMotionResponse   `json:"motion,omitempty"`
	Errors   []string               `json:"errors,omitempty"`
}

// BatchResponse DTO ответа на пакет
// @Description DTO ответа на пакет
type BatchResponse struct {
	Message string              `json:"message"`
	Result  BatchResultResponse `json:"result"`
}

// DistanceResponse DTO пройденного за день расстояния
// @Description DTO пройденного за день расстояния
type DistanceResponse struct {
	Date       string  `json:"date"`
	DistanceKm float64 `json:"distance_km"`
}

// JobResponse DTO поставленной в очередь задачи
// @Description DTO поставленной в очередь задачи
type JobResponse struct {
	Message string                 `json:"message"`
	Job     *models.MaintenanceJob `json:"job"`
}
