package common

import (
	"context"
	"fmt"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/utils/ioutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
	"net/http"
)

var (
	metricPageCacheLookup = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "warhol_www",
		Subsystem: "page_cache",
		Name:      "lookup_total",
		Help:      "Total number of page cache lookups",
	}, []string{"result"})
)

// CachedPage is a rendered page in one content encoding
type CachedPage struct {
	Status   int
	Body     []byte
	Encoding string // the encoding actually applied, might be identity for small bodies
	ETag     string
	RawSize  int
}

type PageRenderFunc func() (status int, body []byte, err error)

var PageRenderTimeoutError = NewHttpError(http.StatusServiceUnavailable, "page render timed out")

// PageCache caches rendered pages per path and content encoding.
// Concurrent misses of the same key are rendered only once
type PageCache struct {
	cache           *lru.LRU[string, *CachedPage] // nil if caching is disabled
	group           singleflight.Group
	compressMinSize int
}

func NewPageCache(cacheCfg *config.CacheConfig, compressionCfg *config.CompressionConfig) *PageCache {
	c := &PageCache{
		compressMinSize: *compressionCfg.MinSize,
	}
	if *cacheCfg.Enabled {
		c.cache = lru.NewLRU[string, *CachedPage](*cacheCfg.Size, nil, *cacheCfg.Ttl)
	}
	return c
}

// Get returns the cached page, or renders it. A caller gives up waiting for the render when ctx is done,
// the render itself keeps going and fills the cache for later requests
func (c *PageCache) Get(ctx context.Context, key string, encoding string, renderFunc PageRenderFunc) (page *CachedPage, hit bool, err error) {
	cacheKey := key + "$" + encoding
	if c.cache != nil {
		if page, ok := c.cache.Get(cacheKey); ok {
			metricPageCacheLookup.WithLabelValues("hit").Inc()
			return page, true, nil
		}
		metricPageCacheLookup.WithLabelValues("miss").Inc()
	}

	resultCh := c.group.DoChan(cacheKey, func() (any, error) {
		status, body, err := renderFunc()
		if err != nil {
			return nil, err
		}
		page, err := newCachedPage(status, body, encoding, c.compressMinSize)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Add(cacheKey, page)
		}
		return page, nil
	})
	select {
	case result := <-resultCh:
		if result.Err != nil {
			return nil, false, result.Err
		}
		return result.Val.(*CachedPage), false, nil
	case <-ctx.Done():
		return nil, false, PageRenderTimeoutError
	}
}

func (c *PageCache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

func (c *PageCache) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

func newCachedPage(status int, body []byte, encoding string, compressMinSize int) (*CachedPage, error) {
	if len(body) < compressMinSize {
		encoding = ioutils.EncodingIdentity
	}
	encoded, err := ioutils.CompressBytes(body, encoding)
	if err != nil {
		return nil, fmt.Errorf("compress page with %s failed: %v", encoding, err)
	}

	// different representations must not share a strong ETag
	etag := fmt.Sprintf("\"%016x\"", xxhash.Sum64(body))
	if encoding != ioutils.EncodingIdentity {
		etag = fmt.Sprintf("\"%016x-%s\"", xxhash.Sum64(body), encoding)
	}

	return &CachedPage{
		Status:   status,
		Body:     encoded,
		Encoding: encoding,
		ETag:     etag,
		RawSize:  len(body),
	}, nil
}
