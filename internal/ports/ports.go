package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	WeatherMetrics  WeatherMetrics

	// Records
	RecordRepository RecordRepository

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	MetricsCollector MetricsCollector
	ConfigProvider   ConfigProvider
	Logger           Logger
	Database         interface{}
}
