package workers

import (
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"time"

	"github.com/shirou/gopsutil/process"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/contract"
)

// TelemetryWorker periodically logs process health (RSS, CPU, goroutines)
// together with relay gauges (participants online, room history size).
// Purely observational: it only reads, never mutates.
type TelemetryWorker struct {
	log      *slog.Logger
	interval time.Duration
	registry contract.IRegistry
	history  contract.IHistory
}

func NewTelemetryWorker(
	log *slog.Logger,
	interval time.Duration,
	registry contract.IRegistry,
	history contract.IHistory,
) *TelemetryWorker {
	return &TelemetryWorker{
		log:      log,
		interval: interval,
		registry: registry,
		history:  history,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		w.log.Error("Failed to collect self stats", "err", err)
		return
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Failed to collect self stats", "err", err)
		return
	}

	w.log.Info("Relay telemetry",
		"online", w.registry.Count(),
		"room_history", w.history.RoomSize(),
		"rss_mb", memInfo.RSS/1024/1024,
		"cpu_percent", cpu,
		"goroutines", goruntime.NumGoroutine())
}
