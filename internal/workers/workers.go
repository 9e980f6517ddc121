package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers. Nil entries are dropped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Run starts the workers, blocks until ctx is done and then stops them.
func (w *Workers) Run(ctx context.Context) {
	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
}
