package config

import "github.com/prometheus/client_golang/prometheus"

const (
	sourceFile     = "file"
	sourceDefaults = "defaults"
)

// Metrics used in monitoring service.
var (
	configLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of configuration resolutions by source",
			Name:      "config_loads_total",
			Namespace: "neonode",
		},
		[]string{"source"},
	)

	settingsInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Help:      "Published node settings",
			Name:      "settings_info",
			Namespace: "neonode",
		},
		[]string{"engine"},
	)
)

func init() {
	prometheus.MustRegister(
		configLoads,
		settingsInfo,
	)
}

func setSettingsInfo(s *Settings) {
	settingsInfo.WithLabelValues(s.Storage.Engine).Set(1)
}
