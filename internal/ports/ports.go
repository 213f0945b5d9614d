package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Upstream services
	Geocoder         Geocoder
	ForecastProvider ForecastProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        PipelineMetrics
}
