package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"blog/internal/config"
	"blog/internal/db"
	"blog/internal/metrics"
	"blog/internal/server"
	"blog/internal/session"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("opening database")
	}
	defer database.Close()

	sessions := session.NewStore(cfg.SessionTTL)
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if n := sessions.Sweep(); n > 0 {
				log.WithField("expired", n).Info("swept sessions")
			}
		}
	}()

	collector := metrics.NewCollector(prometheus.NewRegistry(), func() float64 {
		return float64(sessions.Len())
	})

	srv, err := server.New(database, sessions, log, collector, server.Config{
		TemplateDir:   cfg.TemplateDir,
		SecureCookies: cfg.SecureCookies,
	})
	if err != nil {
		log.WithError(err).Fatal("building server")
	}

	log.WithField("port", cfg.Port).Info("listening")
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
