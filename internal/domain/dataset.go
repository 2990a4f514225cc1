package domain

// TrafficLevel is the congestion category recorded for a trip.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

// TrafficLevels lists every valid level, in display order.
func TrafficLevels() []TrafficLevel {
	return []TrafficLevel{TrafficLow, TrafficMedium, TrafficHigh}
}

// ValidTrafficLevel reports whether s names a known traffic level.
func ValidTrafficLevel(s string) bool {
	switch TrafficLevel(s) {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return true
	}
	return false
}

// Weather is the weather condition recorded for a trip.
type Weather string

const (
	WeatherSunny  Weather = "Sunny"
	WeatherRainy  Weather = "Rainy"
	WeatherCloudy Weather = "Cloudy"
)

// WeatherConditions lists every valid condition, in display order.
func WeatherConditions() []Weather {
	return []Weather{WeatherSunny, WeatherRainy, WeatherCloudy}
}

// ValidWeather reports whether s names a known weather condition.
func ValidWeather(s string) bool {
	switch Weather(s) {
	case WeatherSunny, WeatherRainy, WeatherCloudy:
		return true
	}
	return false
}

// Represents a single synthetic observation of a bus trip.
// A DatasetRow pairs trip conditions with the observed arrival time,
// which is the regression target. Rows are independent of each other;
// the only invariants are the per-field value ranges.
type DatasetRow struct {
	Route              string
	Stop               string
	DistanceKM         float64 // in (0, 100]
	Traffic            TrafficLevel
	Weather            Weather
	AverageSpeedKMH    float64 // > 0
	ArrivalTimeMinutes float64 // > 0, regression target
}
