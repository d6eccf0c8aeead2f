package workers

import (
	"context"
	"log/slog"
	"time"

	"peerlink/observability"
)

// StatsReporterWorker periodically logs a stats snapshot so an operator
// tailing the logs can see broker health without the debug endpoint.
type StatsReporterWorker struct {
	log      *slog.Logger
	stats    *observability.Stats
	interval time.Duration
}

func NewStatsReporterWorker(log *slog.Logger, stats *observability.Stats, interval time.Duration) *StatsReporterWorker {
	return &StatsReporterWorker{log: log, stats: stats, interval: interval}
}

func (w *StatsReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s := w.stats.Snapshot()
			w.log.Info("broker stats",
				"current_sessions", s.CurrentSessions,
				"sessions_opened", s.SessionsOpened,
				"messages_relayed", s.MessagesRelayed,
				"requests_rejected", s.RequestsRejected,
				"events_dropped", s.EventsDropped,
				"alloc_mem_mb", s.AllocMemMb,
				"proc_cpu_percent", s.ProcCPUPercent,
			)
		}
	}
}
