package config

import "time"

type ServerConfig struct {
	Listen              *string   `yaml:"listen"`
	TrustedProxyIps     *[]string `yaml:"trusted_proxy_ips"`
	TrustedProxyHeaders *[]string `yaml:"trusted_proxy_headers"`
}

type GitConfig struct {
	User   *string `yaml:"user"`
	Repo   *string `yaml:"repo"`
	Branch *string `yaml:"branch"`
}

type SiteConfig struct {
	Title       *string    `yaml:"title"`
	Git         *GitConfig `yaml:"git"`
	ContentPath *string    `yaml:"content_path"`
}

type CacheConfig struct {
	Enabled *bool          `yaml:"enabled"`
	Size    *int           `yaml:"size"`
	Ttl     *time.Duration `yaml:"ttl"`
}

type CompressionConfig struct {
	Enabled   *bool     `yaml:"enabled"`
	MinSize   *int      `yaml:"min_size"`
	Encodings *[]string `yaml:"encodings"` // in preference order
}

type ResourceLimitConfig struct {
	RequestPerSecond *float64       `yaml:"request_per_second"`
	RequestPerMinute *float64       `yaml:"request_per_minute"`
	RequestPerHour   *float64       `yaml:"request_per_hour"`
	RequestTimeout   *time.Duration `yaml:"request_timeout"`
}

type DiagnosticsConfig struct {
	Enabled bool    `yaml:"enabled"`
	Listen  *string `yaml:"listen"`
}

type Config struct {
	Debug         bool                 `yaml:"debug"`
	Server        *ServerConfig        `yaml:"server"`
	Site          *SiteConfig          `yaml:"site"`
	Cache         *CacheConfig         `yaml:"cache"`
	Compression   *CompressionConfig   `yaml:"compression"`
	ResourceLimit *ResourceLimitConfig `yaml:"resource_limit"`
	Diagnostics   *DiagnosticsConfig   `yaml:"diagnostics"`
}
