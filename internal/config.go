package internal

import "time"

type Config struct {
	Host                string        `env:"HOST,default=0.0.0.0"`
	Port                int           `env:"PORT,default=4000"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	SessionBufferSize   int           `env:"SESSION_BUFFER_SIZE,default=64"`
	TelemetryBufferSize int           `env:"TELEMETRY_BUFFER_SIZE,default=256"`
	WriteTimeout        time.Duration `env:"WRITE_TIMEOUT,default=5s"`
	StatsInterval       time.Duration `env:"STATS_INTERVAL,default=30s"`
	MaxActivityEntries  int           `env:"MAX_ACTIVITY_ENTRIES,default=50"`
	EnableDebugServer   bool          `env:"ENABLE_DEBUG_SERVER,default=false"`
	DebugPort           int           `env:"DEBUG_PORT,default=8081"`
}
