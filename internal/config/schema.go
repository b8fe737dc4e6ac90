package config

// Config holds bookvault configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server  ServerCfg  `mapstructure:"server" yaml:"server"`
	Storage StorageCfg `mapstructure:"storage" yaml:"storage"`
	Poster  PosterCfg  `mapstructure:"poster" yaml:"poster"`
	Logging LoggingCfg `mapstructure:"logging" yaml:"logging"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// StorageCfg configures upload handling.
type StorageCfg struct {
	// MaxUploadMB is the largest accepted PDF upload in megabytes.
	MaxUploadMB int `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	// DefaultUser is the catalog owner assumed when a request names none.
	DefaultUser string `mapstructure:"default_user" yaml:"default_user"`
}

// PosterCfg configures library poster generation.
type PosterCfg struct {
	// Enabled gates the poster endpoint and download attachment.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// AttachOnDownload prepends the poster to book downloads when the
	// request asks for it.
	AttachOnDownload bool `mapstructure:"attach_on_download" yaml:"attach_on_download"`
}

// LoggingCfg configures the structured logger.
type LoggingCfg struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Storage: StorageCfg{
			MaxUploadMB: 50,
			DefaultUser: "default",
		},
		Poster: PosterCfg{
			Enabled:          true,
			AttachOnDownload: true,
		},
		Logging: LoggingCfg{
			Level:  "info",
			Format: "text",
		},
	}
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Storage.MaxUploadMB) << 20
}
