package weather

import "math"

// Category is a coarse weather group derived from an OpenWeatherMap
// condition code.
type Category string

const (
	CategoryThunderstorm Category = "Thunderstorm"
	CategoryDrizzle      Category = "Drizzle"
	CategoryRain         Category = "Rain"
	CategorySnow         Category = "Snow"
	CategoryAtmosphere   Category = "Atmosphere"
	CategoryClear        Category = "Clear"
	CategoryClouds       Category = "Clouds"
	CategoryUnknown      Category = "unknown"
)

// ClassifyCode maps an OpenWeatherMap condition code onto its Category:
// 2xx thunderstorm, 3xx drizzle, 5xx rain, 6xx snow, 7xx atmosphere,
// 800 clear, 801-899 clouds. Anything else, including NaN, is unknown.
// Total over all float64 inputs.
func ClassifyCode(code float64) Category {
	if math.IsNaN(code) {
		return CategoryUnknown
	}

	switch int(math.Floor(code / 100)) {
	case 2:
		return CategoryThunderstorm
	case 3:
		return CategoryDrizzle
	case 5:
		return CategoryRain
	case 6:
		return CategorySnow
	case 7:
		return CategoryAtmosphere
	case 8:
		// 800 is clear sky; 801-804 (and anything else in the 8xx band)
		// are cloud cover.
		if code == 800 {
			return CategoryClear
		}
		return CategoryClouds
	default:
		return CategoryUnknown
	}
}
