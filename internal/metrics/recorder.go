package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkshortener/internal/config"
)

// Recorder is the metrics sink. Increments are buffered on bounded channels
// and batch-written to Postgres via COPY; a full buffer drops the metric
// rather than blocking a request. Running counter totals are also kept
// in-process for the /metrics exposition.
type Recorder struct {
	pool         *pgxpool.Pool
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpCh       chan HTTPMetric
	counterCh    chan CounterMetric
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}

	mu     sync.Mutex
	totals map[string]float64
}

func NewRecorder(pool *pgxpool.Pool, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		pool:       pool,
		logger:     logger,
		cfg:        cfg,
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		counterCh:  make(chan CounterMetric, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
		totals:     make(map[string]float64),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.httpCh <- m:
	default:
		r.logger.Warn("http metrics buffer full, dropping metric")
	}
}

// RecordCounter increments a named counter with labels.
func (r *Recorder) RecordCounter(name string, value float64, labels map[string]string) {
	if !r.cfg.Enabled {
		return
	}

	key := counterKey(name, labels)
	r.mu.Lock()
	r.totals[key] += value
	r.mu.Unlock()

	m := CounterMetric{
		Time:   time.Now(),
		Name:   name,
		Value:  value,
		Labels: labels,
	}
	select {
	case r.counterCh <- m:
	default:
		r.logger.Warn("counter metrics buffer full, dropping metric")
	}
}

// Render returns the in-process counter totals as a plain-text exposition,
// one "name{labels} value" line per counter, sorted by name.
func (r *Recorder) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.totals))
	for key := range r.totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s %g\n", key, r.totals[key])
	}
	return b.String()
}

func counterKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}

	names := make([]string, 0, len(labels))
	for label := range labels {
		names = append(names, label)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, label := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", label, labels[label])
	}
	b.WriteByte('}')
	return b.String()
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(2)
	go r.flushHTTPMetrics(ctx, flushInterval)
	go r.flushCounterMetrics(ctx, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) flushHTTPMetrics(ctx context.Context, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]HTTPMetric, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			r.drainAndFlushHTTP(batch)
			return
		case <-r.shutdownCh:
			r.drainAndFlushHTTP(batch)
			return
		case m := <-r.httpCh:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				r.writeHTTPBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.writeHTTPBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlushHTTP(batch []HTTPMetric) {
	for {
		select {
		case m := <-r.httpCh:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				r.writeHTTPBatch(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (r *Recorder) writeHTTPBatch(ctx context.Context, batch []HTTPMetric) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"http_metrics"},
		[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		r.logger.Error("failed to write http metrics batch", slog.String("error", err.Error()))
	}
}

func (r *Recorder) flushCounterMetrics(ctx context.Context, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]CounterMetric, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			r.drainAndFlushCounters(batch)
			return
		case <-r.shutdownCh:
			r.drainAndFlushCounters(batch)
			return
		case m := <-r.counterCh:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				r.writeCounterBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.writeCounterBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlushCounters(batch []CounterMetric) {
	for {
		select {
		case m := <-r.counterCh:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				r.writeCounterBatch(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (r *Recorder) writeCounterBatch(ctx context.Context, batch []CounterMetric) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		labelsJSON, _ := json.Marshal(m.Labels)
		rows[i] = []any{m.Time, m.Name, m.Value, labelsJSON}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"counter_metrics"},
		[]string{"time", "metric_name", "value", "labels"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		r.logger.Error("failed to write counter metrics batch", slog.String("error", err.Error()))
	}
}
