package handler

import (
	"airline/config"
	"airline/di"
	"airline/shared/logger"
	"net/http"
	"sync"

	_ "airline/docs"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler is the serverless entry point. The routed handler is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService().Handler()
	})

	app.ServeHTTP(w, r)
}
