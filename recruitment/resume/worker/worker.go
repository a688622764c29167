package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/devhire/matchbox/pkg/logx"
	"github.com/devhire/matchbox/recruitment/resume"
	"github.com/devhire/matchbox/recruitment/resume/resumesrv"
)

const (
	dequeueTimeout     = 5 * time.Second
	delayedSweepPeriod = 30 * time.Second
	failedSweepPeriod  = 5 * time.Minute
	failedSweepLimit   = 50
)

// ParseWorker drains the parse queue with a fixed pool of goroutines.
type ParseWorker struct {
	service *resumesrv.Service
	queue   resume.ParseQueue
	workers int
}

func NewParseWorker(service *resumesrv.Service, queue resume.ParseQueue, workers int) *ParseWorker {
	if workers < 1 {
		workers = 1
	}
	return &ParseWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

// Start launches the worker pool and the retry sweepers. It returns
// immediately; everything stops when ctx is cancelled.
func (w *ParseWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d parse workers", w.workers)

	go w.moveDelayedJobs(ctx)
	go w.sweepFailedJobs(ctx)

	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ParseWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Parse worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Parse worker %d stopping", workerID)
			return
		default:
			data, err := w.queue.Dequeue(ctx, dequeueTimeout)
			if err != nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				continue
			}

			// nil data means the blocking pop timed out with no work.
			if len(data) == 0 {
				continue
			}

			var job resume.ParseJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Worker %d processing parse job: %s", workerID, job.ID)
			if err := w.service.ProcessParseJob(ctx, &job); err != nil {
				logx.Errorf("Worker %d job failed: %v", workerID, err)
			}
		}
	}
}

// moveDelayedJobs periodically promotes due retries into the ready queue.
func (w *ParseWorker) moveDelayedJobs(ctx context.Context) {
	ticker := time.NewTicker(delayedSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed jobs: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed jobs to ready queue", count)
			}
		}
	}
}

// sweepFailedJobs re-enqueues failed jobs whose delayed entries were lost,
// e.g. after a Redis flush.
func (w *ParseWorker) sweepFailedJobs(ctx context.Context) {
	ticker := time.NewTicker(failedSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.service.RequeueFailedJobs(ctx, failedSweepLimit); err != nil {
				logx.Errorf("Failed-job sweep error: %v", err)
			}
		}
	}
}
