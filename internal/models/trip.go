package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip - поездка, записанная пользователем в опросе
type Trip struct {
	ID                     uuid.UUID `json:"id"`
	UserID                 uuid.UUID `json:"user_id"`
	TripNumber             string    `json:"trip_number"`
	Origin                 string    `json:"origin"`
	Destination            string    `json:"destination"`
	StartTime              time.Time `json:"start_time"`
	EndTime                time.Time `json:"end_time"`
	ModeOfTravel           string    `json:"mode_of_travel"`
	VehicleType            string    `json:"vehicle_type,omitempty"`
	FuelType               string    `json:"fuel_type,omitempty"`
	AccompanyingTravellers []string  `json:"accompanying_travellers"`
	CreatedAt              time.Time `json:"created_at"`
}
