package weather

const (
	coldThreshold = 10.0
	mildThreshold = 20.0
)

// Suggestions returns clothing advice for a temperature in Celsius.
// The result is never empty and its order is significant.
func Suggestions(temperatureC float64) []string {
	switch {
	case temperatureC < coldThreshold:
		return []string{"Wear a heavy jacket", "Bring an umbrella"}
	case temperatureC < mildThreshold:
		return []string{"Bring a light jacket", "Consider an umbrella"}
	default:
		return []string{"Enjoy the weather", "Sunscreen might be a good idea"}
	}
}
