package config

import (
	"github.com/mattbratos/warhol/www/internal/site"
	"github.com/mattbratos/warhol/www/internal/utils"
	"github.com/mattbratos/warhol/www/internal/utils/ioutils"
	"time"
)

// setDefaultValues fills all nil values with the defaults
func (cfg *Config) setDefaultValues() error {
	// Server
	if cfg.Server == nil {
		cfg.Server = &ServerConfig{}
	}
	if cfg.Server.Listen == nil {
		cfg.Server.Listen = utils.ToPtr(":8010")
	}
	if cfg.Server.TrustedProxyIps == nil {
		cfg.Server.TrustedProxyIps = utils.ToPtr([]string{"127.0.0.1/24"})
	}
	if cfg.Server.TrustedProxyHeaders == nil {
		cfg.Server.TrustedProxyHeaders = utils.ToPtr([]string{
			"CF-Connecting-IP", // Cloudflare
			"X-Forwarded-For",  // Standard proxy header
			"X-Real-IP",        // Common alternative
		})
	}

	// Site
	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
	if cfg.Site.Title == nil {
		cfg.Site.Title = utils.ToPtr(site.DefaultTitle)
	}
	if cfg.Site.Git == nil {
		cfg.Site.Git = &GitConfig{}
	}
	if cfg.Site.Git.User == nil {
		cfg.Site.Git.User = utils.ToPtr(site.DefaultGitConfig.User)
	}
	if cfg.Site.Git.Repo == nil {
		cfg.Site.Git.Repo = utils.ToPtr(site.DefaultGitConfig.Repo)
	}
	if cfg.Site.Git.Branch == nil {
		cfg.Site.Git.Branch = utils.ToPtr(site.DefaultGitConfig.Branch)
	}
	if cfg.Site.ContentPath == nil {
		cfg.Site.ContentPath = utils.ToPtr(site.DefaultContentPath)
	}

	// Cache
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Enabled == nil {
		cfg.Cache.Enabled = utils.ToPtr(true)
	}
	if cfg.Cache.Size == nil {
		cfg.Cache.Size = utils.ToPtr(256)
	}
	if cfg.Cache.Ttl == nil {
		cfg.Cache.Ttl = utils.ToPtr(10 * time.Minute)
	}

	// Compression
	if cfg.Compression == nil {
		cfg.Compression = &CompressionConfig{}
	}
	if cfg.Compression.Enabled == nil {
		cfg.Compression.Enabled = utils.ToPtr(true)
	}
	if cfg.Compression.MinSize == nil {
		cfg.Compression.MinSize = utils.ToPtr(1024)
	}
	if cfg.Compression.Encodings == nil {
		cfg.Compression.Encodings = utils.ToPtr([]string{
			ioutils.EncodingZstd,
			ioutils.EncodingBrotli,
			ioutils.EncodingGzip,
			ioutils.EncodingDeflate,
		})
	}

	// ResourceLimit
	if cfg.ResourceLimit == nil {
		cfg.ResourceLimit = &ResourceLimitConfig{}
	}
	if cfg.ResourceLimit.RequestTimeout == nil {
		cfg.ResourceLimit.RequestTimeout = utils.ToPtr(30 * time.Second)
	}

	// Diagnostics
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = &DiagnosticsConfig{}
	}
	if cfg.Diagnostics.Listen == nil {
		cfg.Diagnostics.Listen = utils.ToPtr("127.0.0.1:6010")
	}

	return nil
}
