package weather

// Theme is the coarse visual category of a weather code
type Theme string

const (
	ThemeSunny   Theme = "sunny"
	ThemeCloudy  Theme = "cloudy"
	ThemeRainy   Theme = "rainy"
	ThemeDefault Theme = "default"
)

const (
	UnknownDescription = "Unknown weather"
	FallbackIcon       = "🌡️"
)

// WMO weather interpretation codes as reported by Open-Meteo
var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
}

var icons = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌦️",
	53: "🌦️",
	55: "🌦️",
	61: "🌧️",
	63: "🌧️",
	65: "⛈️",
	80: "🌦️",
	81: "🌧️",
	82: "⛈️",
}

// Description returns the human readable text for a weather code
func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return UnknownDescription
}

// Icon returns the display glyph for a weather code
func Icon(code int) string {
	if i, ok := icons[code]; ok {
		return i
	}
	return FallbackIcon
}

// ThemeFor derives the page theme from a weather code using range rules
func ThemeFor(code int) Theme {
	switch {
	case code == 0 || code == 1:
		return ThemeSunny
	case code >= 2 && code <= 3:
		return ThemeCloudy
	case code >= 61 && code <= 82:
		return ThemeRainy
	default:
		return ThemeDefault
	}
}

// IsKnownCode reports whether the code has a table entry
func IsKnownCode(code int) bool {
	_, ok := descriptions[code]
	return ok
}

// ShowsRain reports whether the rain animation layer is shown for a code.
func ShowsRain(code int) bool {
	return code >= 61
}

// ShowsParticles reports whether the clear-sky particle layer is shown for a code.
func ShowsParticles(code int) bool {
	return code == 0
}
