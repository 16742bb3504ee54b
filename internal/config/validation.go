package config

import (
	"fmt"
	"github.com/mattbratos/warhol/www/internal/utils"
	"github.com/mattbratos/warhol/www/internal/utils/ioutils"
	"golang.org/x/exp/slices"
	"net"
	"strings"
)

func (cfg *Config) validateValues() error {
	// Server
	if _, _, err := net.SplitHostPort(*cfg.Server.Listen); err != nil {
		return fmt.Errorf("bad Server.Listen %+q: %v", *cfg.Server.Listen, err)
	}
	if !slices.Contains(*cfg.Server.TrustedProxyIps, "*") {
		if _, err := utils.NewTrustedProxies(*cfg.Server.TrustedProxyIps); err != nil {
			return fmt.Errorf("bad TrustedProxyIps value %+q: %v", *cfg.Server.TrustedProxyIps, err)
		}
	}
	for idx, header := range *cfg.Server.TrustedProxyHeaders {
		if strings.TrimSpace(header) == "" {
			return fmt.Errorf("Server.TrustedProxyHeaders[%d] is empty", idx)
		}
	}

	// Site
	checkNonEmpty := func(value, what string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is empty", what)
		}
		return nil
	}
	if err := checkNonEmpty(*cfg.Site.Title, "Site.Title"); err != nil {
		return err
	}
	if err := checkNonEmpty(*cfg.Site.Git.User, "Site.Git.User"); err != nil {
		return err
	}
	if err := checkNonEmpty(*cfg.Site.Git.Repo, "Site.Git.Repo"); err != nil {
		return err
	}
	if err := checkNonEmpty(*cfg.Site.Git.Branch, "Site.Git.Branch"); err != nil {
		return err
	}
	if strings.Contains(*cfg.Site.Git.User, "/") || strings.Contains(*cfg.Site.Git.Repo, "/") {
		return fmt.Errorf("Site.Git.User and Site.Git.Repo cannot contain '/'")
	}

	// Cache
	if *cfg.Cache.Size <= 0 {
		return fmt.Errorf("Cache.Size cannot <= 0, value: %v", *cfg.Cache.Size)
	}
	if *cfg.Cache.Ttl < 0 {
		return fmt.Errorf("Cache.Ttl cannot < 0, value: %v", *cfg.Cache.Ttl)
	}

	// Compression
	if *cfg.Compression.MinSize < 0 {
		return fmt.Errorf("Compression.MinSize cannot < 0, value: %v", *cfg.Compression.MinSize)
	}
	for idx, encoding := range *cfg.Compression.Encodings {
		if !slices.Contains(ioutils.SupportedEncodings, encoding) {
			return fmt.Errorf("Compression.Encodings[%d] %+q is not supported, supported: %v", idx, encoding, ioutils.SupportedEncodings)
		}
	}

	// ResourceLimit
	checkGreaterThanZero := func(value *float64, what string) error {
		if value != nil && *value <= 0 {
			return fmt.Errorf("%s cannot <= 0, value: %v", what, *value)
		}
		return nil
	}
	if err := checkGreaterThanZero(cfg.ResourceLimit.RequestPerSecond, "ResourceLimit.RequestPerSecond"); err != nil {
		return err
	}
	if err := checkGreaterThanZero(cfg.ResourceLimit.RequestPerMinute, "ResourceLimit.RequestPerMinute"); err != nil {
		return err
	}
	if err := checkGreaterThanZero(cfg.ResourceLimit.RequestPerHour, "ResourceLimit.RequestPerHour"); err != nil {
		return err
	}
	if *cfg.ResourceLimit.RequestTimeout <= 0 {
		return fmt.Errorf("ResourceLimit.RequestTimeout cannot <= 0, value: %v", *cfg.ResourceLimit.RequestTimeout)
	}

	// Diagnostics
	if cfg.Diagnostics.Enabled {
		if _, _, err := net.SplitHostPort(*cfg.Diagnostics.Listen); err != nil {
			return fmt.Errorf("bad Diagnostics.Listen %+q: %v", *cfg.Diagnostics.Listen, err)
		}
		if *cfg.Diagnostics.Listen == *cfg.Server.Listen {
			return fmt.Errorf("Diagnostics.Listen %+q conflicts with Server.Listen", *cfg.Diagnostics.Listen)
		}
	}

	return nil
}
