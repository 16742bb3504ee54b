package handler

import (
	"github.com/mattbratos/warhol/www/internal/server/context"
	"net/http"
)

type HttpHandler interface {
	Info() *Info
	ServeHttp(ctx *context.RequestContext, w http.ResponseWriter, r *http.Request)
	Shutdown()
}
