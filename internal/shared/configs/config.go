package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Reports     ReportsConfig     `mapstructure:"reports" validate:"required"`
	Payments    PaymentsConfig    `mapstructure:"payments" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ReportsConfig holds reporting configuration.
type ReportsConfig struct {
	TopCustomersDefaultLimit int `mapstructure:"top_customers_default_limit" validate:"required,min=1"`
}

// PaymentsConfig holds payment-tracking configuration.
type PaymentsConfig struct {
	DueSoonThresholdDays      int `mapstructure:"due_soon_threshold_days" validate:"required,min=1"`
	StalePendingThresholdDays int `mapstructure:"stale_pending_threshold_days" validate:"required,min=1"`
}
