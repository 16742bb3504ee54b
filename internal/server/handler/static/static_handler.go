package static

import (
	"github.com/mattbratos/warhol/www/internal/server/common"
	"github.com/mattbratos/warhol/www/internal/server/context"
	"github.com/mattbratos/warhol/www/internal/server/handler"
	"io/fs"
	"net/http"
	"strings"
)

type staticHandler struct {
	info       *handler.Info
	fsys       fs.FS
	fileServer http.Handler
	notFound   common.NotFoundFunc
}

var _ handler.HttpHandler = &staticHandler{}

func NewStaticHandler(info *handler.Info, fsys fs.FS, notFound common.NotFoundFunc) (handler.HttpHandler, error) {
	return &staticHandler{
		info:       info,
		fsys:       fsys,
		fileServer: http.StripPrefix(info.PathPrefix, http.FileServer(http.FS(fsys))),
		notFound:   notFound,
	}, nil
}

func (h *staticHandler) Info() *handler.Info {
	return h.info
}

func (h *staticHandler) Shutdown() {
}

// exists reports whether the request path names a regular file, directories are never listed
func (h *staticHandler) exists(reqPath string) bool {
	name, ok := strings.CutPrefix(reqPath, h.info.PathPrefix+"/")
	if !ok || name == "" {
		return false
	}
	stat, err := fs.Stat(h.fsys, name)
	return err == nil && stat.Mode().IsRegular()
}

func (h *staticHandler) ServeHttp(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request) {
	if err := common.CheckReadMethod(r); err != nil {
		common.WriteError(w, err)
		return
	}
	if !h.exists(r.URL.Path) {
		h.notFound(ctx, w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	h.fileServer.ServeHTTP(w, r)
}
