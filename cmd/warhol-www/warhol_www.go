package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/mattbratos/warhol/www/internal/config"
	"github.com/mattbratos/warhol/www/internal/constants"
	"github.com/mattbratos/warhol/www/internal/diagnostics"
	"github.com/mattbratos/warhol/www/internal/server"
	"github.com/mattbratos/warhol/www/internal/utils"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func initLogging() {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	log.SetOutput(os.Stdout)
}

func main() {
	flagConfig := flag.String("c", "", "Path to the config yaml file, use the built-in defaults if empty")
	flagShowHelp := flag.Bool("h", false, "Show help and exit")
	flagShowVersion := flag.Bool("v", false, "Show version and exit")
	flag.Parse()

	if *flagShowHelp {
		flag.Usage()
		return
	}
	if *flagShowVersion {
		fmt.Printf("warhol-www v%s\n", constants.Version)
		return
	}

	initLogging()
	cfg := config.LoadConfigOrDie(*flagConfig)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	siteServer, err := server.NewSiteServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	errorLog, closeErrorLog := utils.CreateLogrusStdLogger(log.WarnLevel)
	defer closeErrorLog()
	srv := &http.Server{
		Addr:              *cfg.Server.Listen,
		Handler:           siteServer,
		ErrorLog:          errorLog,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("Starting warhol-www v%s on %s", constants.Version, srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	var diagSrv *http.Server
	if cfg.Diagnostics.Enabled {
		diagSrv = diagnostics.NewServer(cfg.Diagnostics).CreateHttpServer()
		log.Infof("Starting diagnostics server on %s", diagSrv.Addr)
		go func() {
			if err := diagSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Diagnostics server failed: %v", err)
			}
		}()
	}

	sig := <-ch
	log.Infof("Received signal %s, shutting down warhol-www...", sig)
	if err := srv.Close(); err != nil {
		log.Warnf("warhol-www shutdown failed: %v", err)
	}
	if diagSrv != nil {
		if err := diagSrv.Close(); err != nil {
			log.Warnf("Diagnostics server shutdown failed: %v", err)
		}
	}
	siteServer.Shutdown()

	log.Infof("warhol-www stopped")
}
