package config

import (
	"fmt"
	"github.com/mattbratos/warhol/www/internal/site"
	"github.com/mattbratos/warhol/www/internal/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"os"
)

const envVarConfigContent = "WARHOL_WWW_CONFIG"

func (cfg *Config) Init() error {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug logging enabled")
	}
	if err := cfg.setDefaultValues(); err != nil {
		return err
	}
	if err := cfg.validateValues(); err != nil {
		return err
	}
	return nil
}

func (cfg *Config) Dump() {
	log.Infof("Server: listen=%s trusted_proxy_ips=%v", *cfg.Server.Listen, *cfg.Server.TrustedProxyIps)
	log.Infof("Site: title=%+q github=%s branch=%s", *cfg.Site.Title, cfg.SiteModel().Git.GithubUrl(), *cfg.Site.Git.Branch)
	if *cfg.Cache.Enabled {
		log.Infof("Cache: size=%d ttl=%v", *cfg.Cache.Size, *cfg.Cache.Ttl)
	} else {
		log.Infof("Cache: disabled")
	}
	if *cfg.Compression.Enabled {
		log.Infof("Compression: encodings=%v min_size=%s", *cfg.Compression.Encodings, utils.PrettyByteSize(int64(*cfg.Compression.MinSize)))
	} else {
		log.Infof("Compression: disabled")
	}
	rl := cfg.ResourceLimit
	if rl.RequestPerSecond != nil || rl.RequestPerMinute != nil || rl.RequestPerHour != nil {
		log.Infof("Request limit: qps=%v qpm=%v qph=%v", utils.PtrString(rl.RequestPerSecond), utils.PtrString(rl.RequestPerMinute), utils.PtrString(rl.RequestPerHour))
	}
	if cfg.Diagnostics.Enabled {
		log.Infof("Diagnostics: listen=%s", *cfg.Diagnostics.Listen)
	}
}

// SiteModel converts the site section into the site identity it describes
func (cfg *Config) SiteModel() *site.Site {
	return &site.Site{
		Title: *cfg.Site.Title,
		Git: site.GitConfig{
			User:   *cfg.Site.Git.User,
			Repo:   *cfg.Site.Git.Repo,
			Branch: *cfg.Site.Git.Branch,
		},
		ContentPath: *cfg.Site.ContentPath,
	}
}

func ParseConfig(configBuf []byte) (*Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(configBuf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %v", err)
	}
	if err := cfg.Init(); err != nil {
		return nil, fmt.Errorf("config initialization failed: %v", err)
	}
	return &cfg, nil
}

// LoadConfig reads the config from the envvar, or from configPath if set,
// or falls back to the built-in defaults
func LoadConfig(configPath string) (*Config, error) {
	var configBuf []byte
	if configData, ok := os.LookupEnv(envVarConfigContent); ok {
		log.Infof("Loading config from envvar %s", envVarConfigContent)
		configBuf = []byte(configData)
	} else if configPath != "" {
		log.Infof("Loading config from %s", configPath)
		buf, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", configPath, err)
		}
		configBuf = buf
	} else {
		log.Infof("No config file given, using the defaults")
	}
	return ParseConfig(configBuf)
}

func LoadConfigOrDie(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Load config failed: %v", err)
	}
	cfg.Dump()
	return cfg
}
