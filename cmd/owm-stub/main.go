package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"weatherhistory.app/internal/testutil/owmstub"
)

func main() {
	port := flag.Int("port", 8081, "listen port")
	key := flag.String("key", owmstub.APIKey, "accepted appid")
	flag.Parse()

	addr := ":" + strconv.Itoa(*port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           owmstub.New(*key).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Mock OpenWeatherMap server starting",
		"addr", addr,
		"base_url", "http://localhost"+addr+"/data/2.5",
		"geo_url", "http://localhost"+addr+"/geo/1.0")
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
