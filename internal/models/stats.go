package models

import (
	"time"

	"github.com/google/uuid"
)

// History - выборка точек и движений пользователя за окно времени
type History struct {
	Locations []*LocationSample `json:"locations"`
	Motions   []*MotionSample   `json:"motions"`
	Summary   HistorySummary    `json:"summary"`
}

type HistorySummary struct {
	TotalLocations       int `json:"total_locations"`
	TotalMotions         int `json:"total_motions"`
	LocationsWithAddress int `json:"locations_with_address"`
	TimeRangeHours       int `json:"time_range_hours"`
}

// TrackingCounts - сырые счетчики по пользователю из хранилища
type TrackingCounts struct {
	TotalLocations    int
	TotalMotions      int
	LocationsToday    int
	ResolvedAddresses int
	FailedAddresses   int
}

// UserStats - агрегированная статистика трекинга пользователя
type UserStats struct {
	Overall           OverallStats   `json:"overall"`
	Geocoding         GeocodingStats `json:"geocoding"`
	ActivityBreakdown map[string]int `json:"activity_breakdown"`
	LatestActivity    LatestActivity `json:"latest_activity"`
}

type OverallStats struct {
	TotalLocations int `json:"total_locations"`
	TotalMotions   int `json:"total_motions"`
	LocationsToday int `json:"locations_today"`
}

type GeocodingStats struct {
	ResolvedAddresses int     `json:"resolved_addresses"`
	FailedAddresses   int     `json:"failed_addresses"`
	ResolutionRate    float64 `json:"resolution_rate"`
}

type LatestActivity struct {
	LastLocation *LocationSnapshot `json:"last_location"`
	LastMotion   *MotionSnapshot   `json:"last_motion"`
}

type LocationSnapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Address   string    `json:"address"`
}

type MotionSnapshot struct {
	Timestamp    time.Time `json:"timestamp"`
	ActivityType string    `json:"activity_type"`
	Confidence   float64   `json:"confidence"`
}

// RetryResult - итог повторного геокодирования
type RetryResult struct {
	Processed   int `json:"processed"`
	Successful  int `json:"successful"`
	StillFailed int `json:"still_failed"`
}

// CleanupResult - итог удаления устаревших данных
type CleanupResult struct {
	DeletedLocations int64     `json:"deleted_locations"`
	DeletedMotions   int64     `json:"deleted_motions"`
	CutoffDate       time.Time `json:"cutoff_date"`
}

// DeletionStats - количество удаленных записей пользователя по категориям
type DeletionStats struct {
	Trips     int `json:"trips"`
	Locations int `json:"locations"`
	Motions   int `json:"motions"`
	Consents  int `json:"consents"`
}

// Add суммирует статистику удаления
func (d *DeletionStats) Add(other DeletionStats) {
	d.Trips += other.Trips
	d.Locations += other.Locations
	d.Motions += other.Motions
	d.Consents += other.Consents
}

// UserDeletion - результат каскадного удаления одного пользователя
type UserDeletion struct {
	UserID  uuid.UUID     `json:"user_id"`
	Email   string        `json:"email"`
	Deleted DeletionStats `json:"deleted_data"`
}

// DeletionFailure - причина, по которой пользователя не удалось удалить
type DeletionFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

// BulkDeleteResult - итог массового удаления
type BulkDeleteResult struct {
	DeletedCount int               `json:"deleted_count"`
	FailedCount  int               `json:"failed_count"`
	Deleted      []UserDeletion    `json:"deleted_users"`
	Failed       []DeletionFailure `json:"failed_users"`
	TotalDeleted DeletionStats     `json:"total_deleted_data"`
}

// UserCounts - счетчики пользователей по наличию данных
type UserCounts struct {
	Total         int
	WithTrips     int
	WithConsent   int
	WithLocations int
}

// TripCounts - счетчики поездок
type TripCounts struct {
	Total  int
	ByMode map[string]int
}

// TrackingTotals - счетчики данных трекинга по всей базе
type TrackingTotals struct {
	Locations         int
	Motions           int
	Resolved          int
	Failed            int
	ActivityBreakdown map[string]int
}

// ConsentCounts - счетчики согласий
type ConsentCounts struct {
	Total         int
	GPS           int
	Motion        int
	Notifications int
}

// DatabaseStatistics - сводная статистика для администратора
type DatabaseStatistics struct {
	Users       UserCountStats    `json:"users"`
	Trips       TripStats         `json:"trips"`
	Tracking    TrackingDataStats `json:"tracking_data"`
	Consent     ConsentStats      `json:"consent"`
	DataQuality DataQualityStats  `json:"data_quality"`
}

type UserCountStats struct {
	Total            int `json:"total"`
	WithTrips        int `json:"with_trips"`
	WithConsent      int `json:"with_consent"`
	WithLocationData int `json:"with_location_data"`
}

type TripStats struct {
	Total          int            `json:"total"`
	ByMode         map[string]int `json:"by_mode"`
	AveragePerUser float64        `json:"average_per_user"`
}

type TrackingDataStats struct {
	TotalLocations       int            `json:"total_locations"`
	TotalMotions         int            `json:"total_motions"`
	ResolvedAddresses    int            `json:"resolved_addresses"`
	FailedGeocoding      int            `json:"failed_geocoding"`
	GeocodingSuccessRate float64        `json:"geocoding_success_rate"`
	ActivityBreakdown    map[string]int `json:"activity_breakdown"`
}

type ConsentStats struct {
	TotalRecords         int     `json:"total_records"`
	GPSEnabled           int     `json:"gps_enabled"`
	MotionEnabled        int     `json:"motion_enabled"`
	NotificationsEnabled int     `json:"notifications_enabled"`
	GPSRate              float64 `json:"gps_rate"`
	MotionRate           float64 `json:"motion_rate"`
	NotificationRate     float64 `json:"notification_rate"`
}

type DataQualityStats struct {
	UsersWithoutTrips   int `json:"users_without_trips"`
	UsersWithoutConsent int `json:"users_without_consent"`
	GeocodingPending    int `json:"geocoding_pending"`
}
