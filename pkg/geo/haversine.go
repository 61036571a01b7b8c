package geo

import "math"

// EarthRadiusKm - радиус Земли в километрах для формулы гаверсинусов
const EarthRadiusKm = 6371.0

// HaversineKm возвращает расстояние по дуге большого круга в км (координаты в градусах)
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	φ1, φ2 := rad(lat1), rad(lat2)
	Δφ := rad(lat2 - lat1)
	Δλ := rad(lon2 - lon1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}
