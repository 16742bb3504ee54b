package pages

import (
	"errors"
	"fmt"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/constants"
	"github.com/mattbratos/warhol/www/internal/render"
	"github.com/mattbratos/warhol/www/internal/server/common"
	"github.com/mattbratos/warhol/www/internal/server/context"
	"github.com/mattbratos/warhol/www/internal/server/handler"
	"github.com/mattbratos/warhol/www/internal/site"
	"github.com/mattbratos/warhol/www/internal/utils/ioutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	metricPageRenderSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "warhol_www",
		Subsystem: "pages",
		Name:      "render_seconds",
		Help:      "Time spent rendering pages",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"page"})
)

const (
	docsPath    = "/docs"
	healthzPath = "/healthz"
)

type pagesHandler struct {
	info        *handler.Info
	site        *site.Site
	renderer    *render.Renderer
	cache       *common.PageCache
	compression *config.CompressionConfig
	notFound    common.NotFoundFunc
}

var _ handler.HttpHandler = &pagesHandler{}

func NewPagesHandler(info *handler.Info, s *site.Site, renderer *render.Renderer, cfg *config.Config) (handler.HttpHandler, error) {
	for _, doc := range site.DocPages() {
		if !renderer.HasPage(doc.Template) {
			return nil, fmt.Errorf("doc page %s has no template %s", doc.Slug, doc.Template)
		}
	}
	for _, name := range []string{"home", "notfound"} {
		if !renderer.HasPage(name) {
			return nil, fmt.Errorf("missing page template %s", name)
		}
	}

	return &pagesHandler{
		info:        info,
		site:        s,
		renderer:    renderer,
		cache:       common.NewPageCache(cfg.Cache, cfg.Compression),
		compression: cfg.Compression,
		notFound:    NewNotFoundFunc(s, renderer),
	}, nil
}

func (h *pagesHandler) Info() *handler.Info {
	return h.info
}

func (h *pagesHandler) Shutdown() {
	h.cache.Clear()
}

func (h *pagesHandler) ServeHttp(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request) {
	if err := common.CheckReadMethod(r); err != nil {
		common.WriteError(w, err)
		return
	}

	reqPath := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case reqPath == "":
		h.servePage(ctx, w, r, "/", http.StatusOK, "home", h.homeData)
	case reqPath == healthzPath:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	case reqPath == docsPath:
		http.Redirect(w, r, site.GettingStartedPath, http.StatusFound)
	case strings.HasPrefix(reqPath, docsPath+"/"):
		if doc, ok := site.FindDocPage(reqPath[len(docsPath)+1:]); ok {
			h.servePage(ctx, w, r, doc.Path(), http.StatusOK, doc.Template, func() *render.PageData {
				return h.docData(doc)
			})
		} else {
			h.notFound(ctx, w, r)
		}
	default:
		h.notFound(ctx, w, r)
	}
}

// NewNotFoundFunc returns the rendered not found page of the site, shared by every handler
func NewNotFoundFunc(s *site.Site, renderer *render.Renderer) common.NotFoundFunc {
	return func(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request) {
		// not cached, the path is user input
		body, err := renderer.Render("notfound", newPageData(s, "Not Found", "", r.URL.Path))
		if err != nil {
			log.Errorf("%sRender not found page failed: %v", ctx.LogPrefix, err)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusNotFound)
		if r.Method != http.MethodHead {
			_, _ = w.Write(body)
		}
	}
}

func (h *pagesHandler) servePage(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request, key string, status int, pageName string, dataFunc func() *render.PageData) {
	encoding := ioutils.EncodingIdentity
	if *h.compression.Enabled {
		encoding = ioutils.NegotiateEncoding(r.Header.Get("Accept-Encoding"), *h.compression.Encodings)
	}

	page, hit, err := h.cache.Get(r.Context(), key, encoding, func() (int, []byte, error) {
		startTime := time.Now()
		body, err := h.renderer.Render(pageName, dataFunc())
		metricPageRenderSeconds.WithLabelValues(pageName).Observe(time.Since(startTime).Seconds())
		return status, body, err
	})
	if errors.Is(err, common.PageRenderTimeoutError) {
		log.Warnf("%sRender page %s timed out", ctx.LogPrefix, pageName)
		common.WriteError(w, err)
		return
	} else if err != nil {
		log.Errorf("%sRender page %s failed: %v", ctx.LogPrefix, pageName, err)
		common.WriteError(w, err)
		return
	}
	log.Debugf("%sPage %s encoding=%q cache_hit=%v", ctx.LogPrefix, pageName, page.Encoding, hit)

	header := w.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Set("Cache-Control", "no-cache")
	header.Set("ETag", page.ETag)
	header.Add("Vary", "Accept-Encoding")
	if page.Encoding != ioutils.EncodingIdentity {
		header.Set("Content-Encoding", page.Encoding)
	}

	if page.Status == http.StatusOK && etagMatches(r.Header.Get("If-None-Match"), page.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	header.Set("Content-Length", strconv.Itoa(len(page.Body)))
	w.WriteHeader(page.Status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(page.Body)
	}
}

func etagMatches(ifNoneMatch string, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func newPageData(s *site.Site, title string, description string, path string) *render.PageData {
	return &render.PageData{
		Title:       title,
		Description: description,
		Path:        path,
		Version:     constants.Version,
		Layout:      s.Layout(),
		Docs:        site.DocPages(),
	}
}

func (h *pagesHandler) homeData() *render.PageData {
	home := h.site.Home()
	data := newPageData(h.site, h.site.Title, home.Description, "/")
	data.Home = &home
	return data
}

func (h *pagesHandler) docData(doc site.DocPage) *render.PageData {
	data := newPageData(h.site, doc.Title+" | "+h.site.Title, doc.Description, doc.Path())
	data.Doc = &render.DocData{
		DocPage: doc,
		EditUrl: h.site.EditUrl(doc),
	}
	return data
}
