package requestqueue

import (
	"context"
	"sync"
	"time"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
	"StockDash/pkg/logger"
)

// DefaultDelay is the enforced gap between provider calls. The upstream
// free tier allows 5 calls per minute.
const DefaultDelay = 12 * time.Second

// Task is one queued provider call.
type Task func(ctx context.Context) (models.ProviderPayload, error)

// Result delivers a finished task's outcome to its waiter.
type Result struct {
	Payload models.ProviderPayload
	Err     error
}

type pendingTask struct {
	ctx        context.Context
	run        Task
	done       chan Result
	enqueuedAt time.Time
}

// Queue serializes provider calls: strict FIFO, one call in flight at a time,
// with a fixed delay observed between the completion of one call and the
// start of the next. A failed task delivers its error to its own waiter only;
// draining continues with the next task. The queue is either idle or draining
// and moves back to idle on its own once empty.
type Queue struct {
	delay   time.Duration
	log     *logger.Logger
	metrics drepo.Metrics

	mu       sync.Mutex
	pending  []*pendingTask
	draining bool
}

// New creates a queue. A non-positive delay falls back to DefaultDelay.
func New(delay time.Duration, log *logger.Logger, metrics drepo.Metrics) *Queue {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Queue{delay: delay, log: log, metrics: metrics}
}

// Enqueue appends the task and returns a channel that receives exactly one
// Result. Once queued a task will run; callers cannot retract it.
func (q *Queue) Enqueue(ctx context.Context, run Task) <-chan Result {
	t := &pendingTask{
		ctx:        ctx,
		run:        run,
		done:       make(chan Result, 1),
		enqueuedAt: time.Now(),
	}

	q.mu.Lock()
	q.pending = append(q.pending, t)
	depth := len(q.pending)
	start := !q.draining
	if start {
		q.draining = true
	}
	q.mu.Unlock()

	if q.metrics != nil {
		q.metrics.RecordQueueDepth(depth)
	}
	if start {
		go q.drain()
	}
	return t.done
}

// Depth returns the number of tasks waiting to run.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		t := q.pending[0]
		q.pending = q.pending[1:]
		depth := len(q.pending)
		q.mu.Unlock()

		if q.metrics != nil {
			q.metrics.RecordQueueDepth(depth)
			q.metrics.RecordQueueWait(time.Since(t.enqueuedAt).Seconds())
		}

		payload, err := t.run(t.ctx)
		if err != nil && q.log != nil {
			q.log.Warn("queued request failed", logger.Error(err))
		}
		t.done <- Result{Payload: payload, Err: err}

		// Gap before the next call. The queue stays in the draining state
		// through the sleep so a task arriving now still waits its turn.
		time.Sleep(q.delay)
	}
}
