package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Address - нормализованный результат обратного геокодирования
type Address struct {
	FullAddress      string `json:"full_address"`
	FormattedAddress string `json:"formatted_address"`
	StreetNumber     string `json:"street_number"`
	StreetName       string `json:"street_name"`
	Neighborhood     string `json:"neighborhood"`
	City             string `json:"city"`
	State            string `json:"state"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	CountryCode      string `json:"country_code"`
}

// LocationReading - сырые GPS данные от клиента
type LocationReading struct {
	Latitude         float64
	Longitude        float64
	Accuracy         *float64
	Altitude         *float64
	AltitudeAccuracy *float64
	Heading          *float64
	Speed            *float64 // м/с
}

// LocationSample - сохраненная GPS точка пользователя
type LocationSample struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Accuracy         *float64   `json:"accuracy,omitempty"`
	Altitude         *float64   `json:"altitude,omitempty"`
	AltitudeAccuracy *float64   `json:"altitude_accuracy,omitempty"`
	Heading          *float64   `json:"heading,omitempty"`
	Speed            *float64   `json:"speed,omitempty"`
	Address          Address    `json:"address"`
	AddressResolved  bool       `json:"address_resolved"`
	GeocodingFailed  bool       `json:"geocoding_failed"`
	Timestamp        time.Time  `json:"timestamp"`
	AddressUpdatedAt *time.Time `json:"address_updated_at,omitempty"`
}

// ApplyAddress помечает точку как успешно геокодированную
func (l *LocationSample) ApplyAddress(addr *Address, at time.Time) {
	l.Address = *addr
	l.AddressResolved = true
	l.GeocodingFailed = false
	l.AddressUpdatedAt = &at
}

// MarkGeocodingFailed помечает точку как неудачно геокодированную
func (l *LocationSample) MarkGeocodingFailed() {
	l.AddressResolved = false
	l.GeocodingFailed = true
}

// SimpleAddress возвращает адрес для отображения
func (l *LocationSample) SimpleAddress() string {
	if l.Address.FormattedAddress != "" {
		return l.Address.FormattedAddress
	}
	if l.Address.FullAddress != "" {
		return l.Address.FullAddress
	}
	return fmt.Sprintf("Near %.4f, %.4f", l.Latitude, l.Longitude)
}

// TimelinePoint - точка дневной хронологии перемещений
type TimelinePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
}

// FrequentLocation - кластер часто посещаемых мест
type FrequentLocation struct {
	Location   string    `json:"location"`
	Address    string    `json:"address"`
	Visits     int       `json:"visits"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	FirstVisit time.Time `json:"first_visit"`
	LastVisit  time.Time `json:"last_visit"`
}
