package diagnostics

import (
	"fmt"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/constants"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"net/http/pprof"
	"strings"
)

type Server struct {
	cfg *config.DiagnosticsConfig
}

func NewServer(cfg *config.DiagnosticsConfig) *Server {
	return &Server{
		cfg: cfg,
	}
}

func (s *Server) CreateHttpServer() *http.Server {
	return &http.Server{
		Addr:    *s.cfg.Listen,
		Handler: s.createMux(),
	}
}

func (s *Server) createMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", s.createRootHandler())
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/debug/pprof/", s.createDebugPprofHandler())
	return mux
}

func (s *Server) createRootHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fmt.Sprintf("warhol-www v%s", constants.Version)))
	}
}

func (s *Server) createDebugPprofHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if pprofName, found := strings.CutPrefix(r.URL.Path, "/debug/pprof/"); found {
			// ref: net/http/pprof/pprof.go, init()
			switch pprofName {
			case "":
				pprof.Index(w, r)
			case "cmdline":
				pprof.Cmdline(w, r)
			case "profile":
				pprof.Profile(w, r)
			case "symbol":
				pprof.Symbol(w, r)
			case "trace":
				pprof.Trace(w, r)
			default:
				pprof.Handler(pprofName).ServeHTTP(w, r)
			}
		} else {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		}
	}
}
