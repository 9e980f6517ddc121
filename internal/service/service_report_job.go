package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/node-reporter/internal/clock"
	"github.com/MKhiriev/node-reporter/internal/config"
	"github.com/MKhiriev/node-reporter/internal/logger"
)

type reportJob struct {
	telemetry TelemetryService
	clock     clock.Clock
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	next   time.Time
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewReportJob creates a reportJob that calls telemetry.Tick on clk. If
// interval is zero or negative it defaults to config.DefaultReportInterval.
// The job is idle until Start is called.
func NewReportJob(telemetry TelemetryService, clk clock.Clock, interval time.Duration, logger *logger.Logger) ReportJob {
	if interval <= 0 {
		interval = config.DefaultReportInterval
	}
	return &reportJob{
		telemetry: telemetry,
		clock:     clk,
		interval:  interval,
		logger:    logger,
	}
}

// Start implements ReportJob. It stops any previously running loop, then
// launches a goroutine that ticks immediately and re-arms its timer only
// after each tick returns, so at most one tick is in flight. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *reportJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.next = j.clock.Now()
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("telemetry job started")

	go func() {
		defer j.wg.Done()
		defer j.setNext(time.Time{})

		for {
			// errors are logged and journaled by the service
			_, _ = j.telemetry.Tick(jobCtx)
			if jobCtx.Err() != nil {
				return
			}

			j.setNext(j.clock.Now().Add(j.interval))
			wait := j.clock.After(j.interval)

			select {
			case <-jobCtx.Done():
				return
			case <-wait:
			}
		}
	}()
}

// Stop implements ReportJob. It cancels the loop's context and blocks until
// the goroutine has fully exited. Safe to call when the job is not running.
func (j *reportJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.wg.Wait()
		j.logger.Info().Msg("telemetry job stopped")
	}
}

// NextFireTime implements ReportJob.
func (j *reportJob) NextFireTime() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.next
}

func (j *reportJob) setNext(t time.Time) {
	j.mu.Lock()
	j.next = t
	j.mu.Unlock()
}
