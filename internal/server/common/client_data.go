package common

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/utils"
	"time"
)

type ClientData struct {
	RequestRateLimiter utils.RateLimiter // nil for unlimited
}

// ClientDataCache keeps per-client state, keyed by utils.ClientKey
type ClientDataCache struct {
	cfg   *config.ResourceLimitConfig
	cache *lru.LRU[string, *ClientData]
}

func NewClientDataCache(cfg *config.ResourceLimitConfig) *ClientDataCache {
	return &ClientDataCache{
		cfg:   cfg,
		cache: lru.NewLRU[string, *ClientData](10240, nil, 3*time.Hour),
	}
}

func (c *ClientDataCache) GetData(clientAddr string) *ClientData {
	key := utils.ClientKey(clientAddr)
	if value, ok := c.cache.Get(key); ok {
		return value
	}

	data := c.newClientData()
	c.cache.Add(key, data)
	return data
}

func (c *ClientDataCache) newClientData() *ClientData {
	return &ClientData{
		RequestRateLimiter: utils.CreateRequestRateLimiter(c.cfg.RequestPerSecond, c.cfg.RequestPerMinute, c.cfg.RequestPerHour),
	}
}

func (c *ClientDataCache) Clear() {
	c.cache.Purge()
}
