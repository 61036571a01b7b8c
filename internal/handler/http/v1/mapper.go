package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/models"
)

// DTOToLocationReading преобразует DTO точки в доменную модель
func DTOToLocationReading(dto *LocationRequest) *models.LocationReading {
	if dto == nil {
		return nil
	}
	return &models.LocationReading{
		Latitude:         *dto.Latitude,
		Longitude:        *dto.Longitude,
		Accuracy:         dto.Accuracy,
		Altitude:         dto.Altitude,
		AltitudeAccuracy: dto.AltitudeAccuracy,
		Heading:          dto.Heading,
		Speed:            dto.Speed,
	}
}

// DTOToMotionReading преобразует DTO движения; отсутствующие группы остаются пустыми
func DTOToMotionReading(dto *MotionRequest) *models.MotionReading {
	if dto == nil {
		return nil
	}
	return &models.MotionReading{
		Acceleration:                 toVector(dto.Acceleration),
		AccelerationIncludingGravity: toVector(dto.AccelerationIncludingGravity),
		RotationRate:                 toRotation(dto.RotationRate),
		Orientation:                  toRotation(dto.Orientation),
	}
}

func toVector(v *VectorDTO) models.Vector3 {
	if v == nil {
		return models.Vector3{}
	}
	return models.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func toRotation(r *RotationDTO) models.Rotation {
	if r == nil {
		return models.Rotation{}
	}
	return models.Rotation{Alpha: r.Alpha, Beta: r.Beta, Gamma: r.Gamma}
}

func DTOToConsentUpdate(dto ConsentRequest) models.ConsentUpdate {
	return models.ConsentUpdate{
		GPS:            dto.GPS,
		Notifications:  dto.Notifications,
		MotionActivity: dto.MotionActivity,
	}
}

func DTOToTripModel(dto CreateTripRequest, userID uuid.UUID) *models.Trip {
	return &models.Trip{
		UserID:                 userID,
		TripNumber:             dto.TripNumber,
		Origin:                 dto.Origin,
		Destination:            dto.Destination,
		StartTime:              dto.StartTime,
		EndTime:                dto.EndTime,
		ModeOfTravel:           dto.ModeOfTravel,
		VehicleType:            dto.VehicleType,
		FuelType:               dto.FuelType,
		AccompanyingTravellers: dto.AccompanyingTravellers,
	}
}

// ModelToBatchResponse преобразует результат пакета в DTO ответа
func ModelToBatchResponse(result *models.BatchResult) BatchResultResponse {
	resp := BatchResultResponse{Errors: result.Errors}
	if result.Location != nil {
		resp.Location = &BatchLocationResponse{
			ID:      result.Location.ID,
			Address: result.Location.Address,
		}
	}
	if result.Motion != nil {
		resp.Motion = &BatchMotionResponse{
			ID: result.Motion.ID,
			Activity: DetectedActivity{
				Type:       result.Motion.ActivityType,
				Confidence: result.Motion.Confidence,
			},
		}
	}
	return resp
}
