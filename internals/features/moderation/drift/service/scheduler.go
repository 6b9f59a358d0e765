// file: internals/features/moderation/drift/service/scheduler.go
package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type Task func(ctx context.Context)

// Scheduler runs task once after initialDelay, then every interval, until stop is called.
// A tick that arrives while the previous run is still going is skipped.
type Scheduler interface {
	Schedule(initialDelay, interval time.Duration, task Task) (stop func())
}

// CronScheduler is the production scheduler.
type CronScheduler struct{}

func (CronScheduler) Schedule(initialDelay, interval time.Duration, task Task) func() {
	ctx, cancel := context.WithCancel(context.Background())

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	c.Schedule(cron.Every(interval), cron.FuncJob(func() {
		if ctx.Err() == nil {
			task(ctx)
		}
	}))

	var (
		mu      sync.Mutex
		stopped bool
		first   sync.WaitGroup
	)
	// first run establishes the baseline before the cron starts ticking
	first.Add(1)
	timer := time.AfterFunc(initialDelay, func() {
		defer first.Done()
		if ctx.Err() != nil {
			return
		}
		task(ctx)
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			c.Start()
		}
	})

	// stop returns only after any in-flight run, initial or cron, has finished
	return func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
		cancel()
		if timer.Stop() {
			first.Done()
		}
		first.Wait()
		<-c.Stop().Done()
	}
}

// ManualScheduler only runs tasks when Tick is called.
type ManualScheduler struct {
	mu    sync.Mutex
	seq   int
	tasks map[int]Task
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: map[int]Task{}}
}

func (m *ManualScheduler) Schedule(_, _ time.Duration, task Task) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := m.seq
	m.tasks[id] = task
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.tasks, id)
	}
}

// Tick runs every live task once, sequentially, in registration order.
func (m *ManualScheduler) Tick(ctx context.Context) {
	m.mu.Lock()
	tasks := make([]Task, 0, len(m.tasks))
	for i := 1; i <= m.seq; i++ {
		if t, ok := m.tasks[i]; ok {
			tasks = append(tasks, t)
		}
	}
	m.mu.Unlock()

	for _, t := range tasks {
		t(ctx)
	}
}

func (m *ManualScheduler) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
