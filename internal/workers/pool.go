package workers

import (
	"sync"

	"github.com/MKhiriev/go-hivemind/internal/logger"
)

// Pool runs tasks on a fixed set of goroutines fed by a bounded queue. When
// the queue is full, or the pool is closed, Submit runs the task on the
// caller's goroutine, so work is never dropped.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

// NewPool starts size goroutines draining a queue of capacity queueSize.
// size is raised to 1 when lower.
func NewPool(size, queueSize int, log *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		tasks:  make(chan func(), queueSize),
		logger: log,
	}

	p.wg.Add(size)
	for range size {
		go p.loop()
	}

	return p
}

// Submit queues task or, when the queue is full, runs it immediately.
func (p *Pool) Submit(task func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.run(task)
		return
	}

	select {
	case p.tasks <- task:
	default:
		p.logger.Debug().Msg("task queue is full, running task on caller")
		p.run(task)
	}
}

// Close stops accepting queued tasks, drains the queue and waits for the
// pool goroutines to exit.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Any("panic", r).Msg("background task panicked")
		}
	}()
	task()
}
