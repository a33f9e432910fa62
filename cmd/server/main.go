package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hckonnect/hubgate/internal/db"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/routes"
)

// @title Hubgate API
// @version 1.0
// @description Gateway for the HCKonnect campus community platform.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Hubgate starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	hubDB, err := db.InitSQLite()
	if err != nil {
		logging.Error("Failed to open preference store", "error", err.Error())
		log.Fatalf("❌ Failed to open preference store: %v", err)
	}
	logging.Info("Preference store ready")

	upSince := time.Now()

	router, _ := routes.RegisterRoutes(hubDB, upSince)

	// Metrics endpoint lives outside the Chi router so it skips the session
	// and rate limit middleware
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("HUBGATE_PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting",
		"port", port,
		"environment", appEnv,
	)

	log.Println("Starting server on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
