// Package debug holds periodic runtime loggers started when config.Debug is
// true. They run off the UI thread and only read atomics and runtime stats.
package debug

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync"
	"time"
)

// AttrsFunc returns extra attributes appended to each runtime log line, for
// example live state and frame rate.
type AttrsFunc func() []slog.Attr

// StartRuntimeLogger logs goroutine count, stack and heap usage every
// interval until stop is called.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger, extra AttrsFunc) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		defer recoverLog(logger, "runtime logger panic")
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			attrs := []slog.Attr{
				slog.Uint64("goroutines", sampleUint(samples[0])),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("stack_sys", ms.StackSys),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
			}
			if extra != nil {
				attrs = append(attrs, extra()...)
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "runtime", attrs...)
		}
	}()
	return stopOnce(done)
}

func sampleUint(s metrics.Sample) uint64 {
	if s.Value.Kind() != metrics.KindUint64 {
		return uint64(runtime.NumGoroutine())
	}
	return s.Value.Uint64()
}

func stopOnce(done chan struct{}) func() {
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}
