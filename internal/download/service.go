package download

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/khanhnv219/nexus-downloader/internal/model"
)

// ProgressCallback receives one notification per task tick, addressed by the
// originating URL.
type ProgressCallback func(url string, update model.ProgressUpdate)

// OutcomeCallback receives exactly one terminal outcome per attempted
// request, addressed by the originating URL.
type OutcomeCallback func(url string, outcome model.Outcome)

// SummaryCallback fires once when a nonempty batch fully drains.
type SummaryCallback func(succeeded, failed int)

// Orchestrator owns the pending FIFO queue, the bounded worker pool, the
// shared cancellation flag, and the batch progress counters. Queue and
// counter mutations are serialized under one mutex; pull-on-completion is the
// sole driver of queue drainage.
type Orchestrator struct {
	mat     Materializer
	logger  zerolog.Logger
	cleanup CleanupConfig
	flag    CancelFlag

	mu          sync.Mutex
	queue       []*model.DownloadRequest
	active      int
	maxParallel int
	progress    model.BatchProgress

	onProgress ProgressCallback
	onOutcome  OutcomeCallback
	onSummary  SummaryCallback
}

// NewOrchestrator creates an orchestrator draining requests through mat with
// at most maxParallel simultaneous transfers.
func NewOrchestrator(mat Materializer, maxParallel int, logger zerolog.Logger) *Orchestrator {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Orchestrator{
		mat:         mat,
		logger:      logger,
		cleanup:     DefaultCleanupConfig(),
		maxParallel: maxParallel,
	}
}

// SetProgressCallback sets the per-tick progress listener.
func (o *Orchestrator) SetProgressCallback(cb ProgressCallback) { o.onProgress = cb }

// SetOutcomeCallback sets the terminal-outcome listener.
func (o *Orchestrator) SetOutcomeCallback(cb OutcomeCallback) { o.onOutcome = cb }

// SetSummaryCallback sets the end-of-batch listener.
func (o *Orchestrator) SetSummaryCallback(cb SummaryCallback) { o.onSummary = cb }

// SetCleanupConfig overrides the partial-file cleanup parameters.
func (o *Orchestrator) SetCleanupConfig(cfg CleanupConfig) { o.cleanup = cfg }

// Configure sets the maximum number of simultaneously active tasks. It is
// effective for subsequently started tasks; lowering it never preempts
// running ones, raising it immediately fills the freed slots from the queue.
func (o *Orchestrator) Configure(limit int) {
	if limit < 1 {
		limit = 1
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.maxParallel = limit
	o.fillSlotsLocked()
}

// SubmitBatch enqueues the requests in order and starts filling free worker
// slots. The stop flag is cleared on every submission so a batch submitted
// after a stop always starts fresh, even while the stopped batch is still
// unwinding. Counters reset only when the orchestrator was idle; while a
// previous batch is still draining the submission appends to the live queue
// and the counters keep accumulating.
func (o *Orchestrator) SubmitBatch(requests []*model.DownloadRequest) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.flag.Clear()
	if o.idleLocked() {
		o.progress = model.BatchProgress{}
	}
	o.progress.Total += len(requests)
	o.queue = append(o.queue, requests...)
	o.fillSlotsLocked()
}

// RequestStop sets the cancellation flag and drops the pending queue. Dropped
// items never start and report no outcome; the batch total shrinks by the
// dropped count so the drain invariant holds. Idempotent, safe from any
// state.
func (o *Orchestrator) RequestStop() {
	o.mu.Lock()
	dropped := len(o.queue)
	o.queue = nil
	o.progress.Total -= dropped
	o.progress.Pending = 0
	o.flag.Set()
	o.mu.Unlock()

	if dropped > 0 {
		o.logger.Info().Int("dropped", dropped).Msg("stop requested, pending queue cleared")
	}
}

// IsIdle reports whether the queue is empty and no workers are active.
func (o *Orchestrator) IsIdle() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.idleLocked()
}

// Progress returns a snapshot of the batch counters.
func (o *Orchestrator) Progress() model.BatchProgress {
	o.mu.Lock()
	defer o.mu.Unlock()
	p := o.progress
	p.InFlight = o.active
	p.Pending = len(o.queue)
	return p
}

func (o *Orchestrator) idleLocked() bool {
	return len(o.queue) == 0 && o.active == 0
}

// fillSlotsLocked starts queued requests while slots are free, preserving
// FIFO submission order.
func (o *Orchestrator) fillSlotsLocked() {
	for o.active < o.maxParallel && len(o.queue) > 0 {
		req := o.queue[0]
		o.queue = o.queue[1:]
		o.active++
		go o.runWorker(req)
	}
}

func (o *Orchestrator) runWorker(req *model.DownloadRequest) {
	t := &task{
		req:     req,
		mat:     o.mat,
		flag:    &o.flag,
		cleanup: o.cleanup,
		logger:  o.logger.With().Str("url", req.URL).Logger(),
		emit: func(update model.ProgressUpdate) {
			if o.onProgress != nil {
				o.onProgress(req.URL, update)
			}
		},
	}

	outcome := t.run(context.Background())

	// The outcome is delivered before the slot is released: the summary
	// fires from whichever worker drains the batch, and every terminal
	// outcome must precede it.
	if o.onOutcome != nil {
		o.onOutcome(req.URL, outcome)
	}

	o.mu.Lock()
	o.active--
	if outcome.Kind == model.OutcomeCompleted {
		o.progress.Completed++
	} else {
		o.progress.Failed++
	}
	o.fillSlotsLocked()
	idle := o.idleLocked()
	succeeded, failed, total := o.progress.Completed, o.progress.Failed, o.progress.Total
	o.mu.Unlock()

	if idle && total > 0 && o.onSummary != nil {
		o.onSummary(succeeded, failed)
	}
}
