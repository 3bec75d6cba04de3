package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/orderdocs/order-extractor/internal/entity"
	"github.com/orderdocs/order-extractor/internal/pipeline"
)

// Job is one document queued for extraction. Documents are independent, so
// workers run them in parallel; only the learning store and registry
// serialize internally.
type Job struct {
	ID          string
	Text        string
	PartnerHint string
}

// ResultFunc receives each finished extraction.
type ResultFunc func(job Job, result entity.ExtractionResult)

type ExtractQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	onDone  ResultFunc
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ExtractQueue)

func WithWorkers(n int) Option {
	return func(q *ExtractQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ExtractQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ExtractQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewExtractQueue(proc *pipeline.Processor, onDone ResultFunc, logger *slog.Logger, opts ...Option) *ExtractQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ExtractQueue{
		proc:    proc,
		logger:  logger,
		onDone:  onDone,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ExtractQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					result := q.proc.Process(ctx, job.Text, job.PartnerHint)
					cancel()

					q.logger.Info("processed document",
						"worker_id", workerID,
						"job_id", job.ID,
						"method", string(result.Method),
						"quality_level", string(result.QualityLevel),
					)
					if q.onDone != nil {
						q.onDone(job, result)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ExtractQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.ID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document", "job_id", job.ID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.ID)
		q.ch <- job
	}
	return nil
}

func (q *ExtractQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
