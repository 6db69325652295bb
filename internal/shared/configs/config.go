package configs

// Config holds all configuration for the application.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Source SourceConfig `mapstructure:"source" validate:"required"`
	Query  QueryConfig  `mapstructure:"query"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// SourceConfig holds configuration of the request logs being queried.
type SourceConfig struct {
	RootDir      string `mapstructure:"root_dir" validate:"required"`       // directory HTTP source keys resolve against
	MaxLineBytes int    `mapstructure:"max_line_bytes" validate:"min=1024"` // longest accepted log line
}

// QueryConfig holds query defaults.
type QueryConfig struct {
	SkipMalformed bool `mapstructure:"skip_malformed"`
	DefaultTopN   int  `mapstructure:"default_top_n" validate:"min=0"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}
