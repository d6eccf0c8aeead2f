package internal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"peerlink/observability"
	"peerlink/projection"
)

type statsPage struct {
	Stats  observability.StatsSnapshot `json:"stats"`
	Recent []projection.Entry          `json:"recent"`
}

// StartDebugServer exposes GET /stats with the current counters and
// recent activity. Observability only; nothing here is consulted by
// the broker.
func StartDebugServer(log *slog.Logger, stats *observability.Stats, activity *projection.Activity, port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		page := statsPage{
			Stats:  stats.Snapshot(),
			Recent: activity.Recent(),
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			log.Error("failed to encode stats page", "error", err)
		}
	})

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		log.Info("Debug stats endpoint available", "url", fmt.Sprintf("http://localhost:%d/stats", port))
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("debug server stopped", "error", err)
		}
	}()
}
