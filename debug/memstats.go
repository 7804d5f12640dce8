package debug

import (
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger logs resident set size along with Go heap stats every
// interval to correlate native and heap growth, until stop is called. RSS
// lookup failures are logged once and then reported as zero.
func StartMemLogger(interval time.Duration, logger *slog.Logger) (stop func()) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		defer recoverLog(logger, "mem logger panic")
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := processRSS()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: rss unavailable", slog.String("error", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats",
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_idle", ms.HeapIdle),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
	return stopOnce(done)
}
