package server

import (
	gocontext "context"
	"fmt"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/server/common"
	"github.com/mattbratos/warhol/www/internal/server/context"
	"github.com/mattbratos/warhol/www/internal/server/handler"
	"github.com/mattbratos/warhol/www/internal/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"net"
	"net/http"
	"strconv"
	"time"
)

type SiteServer struct {
	cfg               *config.Config
	trustedProxies    *utils.TrustedProxies
	trustedProxiesAll bool
	clientDataCache   *common.ClientDataCache
	handlers          []handler.HttpHandler
}

var _ http.Handler = &SiteServer{}

func NewSiteServer(cfg *config.Config) (*SiteServer, error) {
	trustedProxiesAll := slices.Contains(*cfg.Server.TrustedProxyIps, "*")
	var trustedProxies *utils.TrustedProxies
	if !trustedProxiesAll {
		var err error
		if trustedProxies, err = utils.NewTrustedProxies(*cfg.Server.TrustedProxyIps); err != nil {
			return nil, fmt.Errorf("TrustedProxyIps init failed: %v", err)
		}
	}

	handlers, err := createSiteHandlers(cfg)
	if err != nil {
		return nil, err
	}

	return &SiteServer{
		cfg:               cfg,
		trustedProxies:    trustedProxies,
		trustedProxiesAll: trustedProxiesAll,
		clientDataCache:   common.NewClientDataCache(cfg.ResourceLimit),
		handlers:          handlers,
	}, nil
}

func (s *SiteServer) createRequestContext(r *http.Request) *context.RequestContext {
	host := r.Host
	if hostPart, _, err := net.SplitHostPort(r.Host); err == nil {
		host = hostPart
	}

	clientIp, clientAddr := utils.GetIpFromHostPort(r.RemoteAddr)
	if s.trustedProxiesAll || (clientIp != nil && s.trustedProxies.Contains(clientIp)) {
		if realClientIp, ok := utils.GetRequestClientIpFromProxyHeader(r, *s.cfg.Server.TrustedProxyHeaders); ok {
			clientAddr = realClientIp
		}
	}
	return context.NewRequestContext(host, clientAddr)
}

func (s *SiteServer) findHandler(path string) handler.HttpHandler {
	for _, hdl := range s.handlers {
		if hdl.Info().Matches(path) {
			return hdl
		}
	}
	return nil
}

func sll(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

func (s *SiteServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// context init
	ctx := s.createRequestContext(r)
	targetHandler := s.findHandler(r.URL.Path)
	handlerName := "none"
	if targetHandler != nil {
		handlerName = targetHandler.Info().Id
	}
	ctx.LogPrefix = fmt.Sprintf("(%s:%s) ", handlerName, ctx.RequestId)

	// start logging
	logLine := ctx.LogPrefix + fmt.Sprintf("%s - %s %s", ctx.ClientAddr, r.Method, r.URL)
	log.
		WithField("Host", ctx.Host).
		WithField("UA", sll(r.UserAgent(), 24)).
		Debug(logLine)

	// set total timeout for this request
	timeoutCtx, cancel := gocontext.WithTimeout(r.Context(), *s.cfg.ResourceLimit.RequestTimeout)
	defer cancel()
	r = r.WithContext(timeoutCtx)

	writer, stats := utils.WrapResponseWriter(w)

	defer func() {
		// end logging
		panicErr := recover()
		if panicErr == http.ErrAbortHandler {
			logLine += " (aborted)"
		} else if panicErr != nil {
			logLine += " (panic)"
		}

		costSec := time.Since(ctx.StartTime).Seconds()
		var statusText string
		if code := stats.GetStatusCode(); code != nil {
			statusText = fmt.Sprintf("%d %s", *code, http.StatusText(*code))
			metricRequestServed.WithLabelValues(handlerName, strconv.Itoa(*code)).Inc()
		} else {
			statusText = "N/A"
		}
		metricResponseBytes.WithLabelValues(handlerName).Add(float64(stats.BytesWritten))
		log.
			WithField("Cost", fmt.Sprintf("%.3fs", costSec)).
			WithField("Status", statusText).
			WithField("Size", utils.PrettyByteSize(stats.BytesWritten)).
			Info(logLine)

		if panicErr != nil {
			if panicErr != http.ErrAbortHandler {
				log.Errorf("%sPanic: %v", ctx.LogPrefix, panicErr)
			}
			panic(panicErr)
		}
	}()

	// rate limit
	if limiter := s.clientDataCache.GetData(ctx.ClientAddr).RequestRateLimiter; limiter != nil && !limiter.Allow() {
		metricRequestRateLimited.Inc()
		http.Error(writer, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	// process the request
	if targetHandler != nil {
		targetHandler.ServeHttp(ctx, writer, r)
	} else {
		http.Error(writer, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

func (s *SiteServer) Shutdown() {
	for _, hdl := range s.handlers {
		hdl.Shutdown()
	}
	s.clientDataCache.Clear()
}
