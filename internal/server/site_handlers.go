package server

import (
	"fmt"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/render"
	"github.com/mattbratos/warhol/www/internal/server/handler"
	"github.com/mattbratos/warhol/www/internal/server/handler/api"
	"github.com/mattbratos/warhol/www/internal/server/handler/pages"
	"github.com/mattbratos/warhol/www/internal/server/handler/static"
)

// createSiteHandlers returns the handlers in matching order, the catch-all pages handler goes last
func createSiteHandlers(cfg *config.Config) ([]handler.HttpHandler, error) {
	s := cfg.SiteModel()
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer failed: %v", err)
	}

	var handlers []handler.HttpHandler
	add := func(hdl handler.HttpHandler, err error) error {
		if err != nil {
			return err
		}
		handlers = append(handlers, hdl)
		return nil
	}

	notFound := pages.NewNotFoundFunc(s, renderer)
	if err := add(static.NewStaticHandler(handler.NewInfo("static", "/static"), render.StaticFS(), notFound)); err != nil {
		return nil, fmt.Errorf("init static handler failed: %v", err)
	}
	if err := add(api.NewApiHandler(handler.NewInfo("api", "/api"), s)); err != nil {
		return nil, fmt.Errorf("init api handler failed: %v", err)
	}
	if err := add(pages.NewPagesHandler(handler.NewInfo("pages", ""), s, renderer, cfg)); err != nil {
		return nil, fmt.Errorf("init pages handler failed: %v", err)
	}
	return handlers, nil
}
