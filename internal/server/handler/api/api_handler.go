package api

import (
	"encoding/json"
	"github.com/mattbratos/warhol/www/internal/server/common"
	"github.com/mattbratos/warhol/www/internal/server/context"
	"github.com/mattbratos/warhol/www/internal/server/handler"
	"github.com/mattbratos/warhol/www/internal/site"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strings"
)

type errorResponse struct {
	Error string `json:"error"`
}

type docEntry struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	EditUrl     string `json:"editUrl"`
}

// apiHandler exposes the site model as JSON
type apiHandler struct {
	info *handler.Info
	site *site.Site
}

var _ handler.HttpHandler = &apiHandler{}

func NewApiHandler(info *handler.Info, s *site.Site) (handler.HttpHandler, error) {
	return &apiHandler{
		info: info,
		site: s,
	}, nil
}

func (h *apiHandler) Info() *handler.Info {
	return h.info
}

func (h *apiHandler) Shutdown() {
}

func (h *apiHandler) ServeHttp(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request) {
	if err := common.CheckReadMethod(r); err != nil {
		common.WriteError(w, err)
		return
	}

	reqPath := strings.TrimSuffix(r.URL.Path[len(h.info.PathPrefix):], "/")
	switch reqPath {
	case "/layout":
		h.writeJson(ctx, w, http.StatusOK, h.site.Layout())
	case "/docs":
		docs := site.DocPages()
		entries := make([]docEntry, 0, len(docs))
		for _, doc := range docs {
			entries = append(entries, docEntry{
				Slug:        doc.Slug,
				Title:       doc.Title,
				Description: doc.Description,
				Path:        doc.Path(),
				EditUrl:     h.site.EditUrl(doc),
			})
		}
		h.writeJson(ctx, w, http.StatusOK, entries)
	default:
		h.writeJson(ctx, w, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound)})
	}
}

func (h *apiHandler) writeJson(ctx *context.RequestContext, w http.ResponseWriter, status int, value any) {
	buf, err := json.Marshal(value)
	if err != nil {
		log.Errorf("%sJSON marshal failed: %v", ctx.LogPrefix, err)
		common.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}
