// file: internals/features/moderation/drift/service/poller.go
package service

import (
	"context"
	"log"
	"sync"
	"time"
)

type PollerConfig struct {
	InitialDelay   time.Duration
	Interval       time.Duration
	ObserveTimeout time.Duration
}

// Poller drives one scheduled observation loop per registered subject.
type Poller struct {
	Tracker   *Tracker
	Scheduler Scheduler
	Config    PollerConfig

	mu    sync.Mutex
	stops []func()
}

func NewPoller(tracker *Tracker, sched Scheduler, cfg PollerConfig) *Poller {
	if sched == nil {
		sched = CronScheduler{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.ObserveTimeout <= 0 {
		cfg.ObserveTimeout = 10 * time.Second
	}
	return &Poller{Tracker: tracker, Scheduler: sched, Config: cfg}
}

// Start schedules every subject known to the tracker. Calling it twice restarts.
func (p *Poller) Start() {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, name := range p.Tracker.Subjects() {
		name := name
		stop := p.Scheduler.Schedule(p.Config.InitialDelay, p.Config.Interval, func(ctx context.Context) {
			ctx, cancel := context.WithTimeout(ctx, p.Config.ObserveTimeout)
			defer cancel()
			p.Tracker.Observe(ctx, name)
		})
		p.stops = append(p.stops, stop)
		log.Printf("[DRIFT] polling %s every %s (initial delay %s)", name, p.Config.Interval, p.Config.InitialDelay)
	}
}

func (p *Poller) Stop() {
	p.mu.Lock()
	stops := p.stops
	p.stops = nil
	p.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}
