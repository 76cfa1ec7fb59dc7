package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Metrics  MetricsConfig
	Pprof    PprofConfig
}

type ServerConfig struct {
	Host               string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port               int    `env:"SERVER_PORT" envDefault:"3000"`
	MaxConnections     int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string `env:"SERVER_MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL,required"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"1024"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"5000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"256"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET" envDefault:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
