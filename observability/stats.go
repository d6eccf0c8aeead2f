// Package observability aggregates broker counters and process metrics
// for logs and the debug endpoint. Nothing in here feeds back into
// routing decisions.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// StatsSnapshot is the point-in-time view served by the debug endpoint.
type StatsSnapshot struct {
	UptimeSeconds    int64   `json:"uptime_seconds"`
	CurrentSessions  int64   `json:"current_sessions"`
	SessionsOpened   uint64  `json:"sessions_opened"`
	SessionsClosed   uint64  `json:"sessions_closed"`
	MessagesRelayed  uint64  `json:"messages_relayed"`
	RequestsRejected uint64  `json:"requests_rejected"`
	EventsDropped    uint64  `json:"events_dropped"`
	AllocMemMb       uint64  `json:"alloc_mem_mb"`
	NumGC            uint32  `json:"num_gc"`
	ProcCPUPercent   float64 `json:"proc_cpu_percent"`
	ProcRSSMb        uint64  `json:"proc_rss_mb"`
}

// Stats holds atomic broker counters plus best-effort self process
// metrics. Safe for concurrent use.
type Stats struct {
	log       *slog.Logger
	proc      *process.Process
	startedAt time.Time

	currentSessions  atomic.Int64
	sessionsOpened   atomic.Uint64
	sessionsClosed   atomic.Uint64
	messagesRelayed  atomic.Uint64
	requestsRejected atomic.Uint64
	eventsDropped    atomic.Uint64
}

func NewStats(log *slog.Logger) *Stats {
	s := &Stats{log: log, startedAt: time.Now()}

	// Process metrics are nice-to-have; a failure here only blanks
	// the CPU/RSS fields of the snapshot.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("self process metrics unavailable", "error", err)
	} else {
		s.proc = proc
	}
	return s
}

func (s *Stats) SessionOpened() {
	s.sessionsOpened.Add(1)
	s.currentSessions.Add(1)
}

func (s *Stats) SessionClosed() {
	s.sessionsClosed.Add(1)
	s.currentSessions.Add(-1)
}

func (s *Stats) MessageRelayed()  { s.messagesRelayed.Add(1) }
func (s *Stats) RequestRejected() { s.requestsRejected.Add(1) }
func (s *Stats) EventDropped()    { s.eventsDropped.Add(1) }

func (s *Stats) Snapshot() StatsSnapshot {
	snapshot := StatsSnapshot{
		UptimeSeconds:    int64(time.Since(s.startedAt).Seconds()),
		CurrentSessions:  s.currentSessions.Load(),
		SessionsOpened:   s.sessionsOpened.Load(),
		SessionsClosed:   s.sessionsClosed.Load(),
		MessagesRelayed:  s.messagesRelayed.Load(),
		RequestsRejected: s.requestsRejected.Load(),
		EventsDropped:    s.eventsDropped.Load(),
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	snapshot.AllocMemMb = m.Alloc / 1024 / 1024
	snapshot.NumGC = m.NumGC

	if s.proc != nil {
		if cpu, err := s.proc.CPUPercent(); err == nil {
			snapshot.ProcCPUPercent = cpu
		}
		if mem, err := s.proc.MemoryInfo(); err == nil {
			snapshot.ProcRSSMb = mem.RSS / 1024 / 1024
		}
	}
	return snapshot
}
