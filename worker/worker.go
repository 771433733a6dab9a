package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs submitted functions on a fixed number of goroutines.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// New starts a pool of n workers. If n is not positive, a worker is started per CPU.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		p.run(f)
	}
}

// run calls f, reporting a panic to sentry instead of taking the worker down.
func (p *Pool) run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to be run by the next free worker. It blocks while all workers are busy and the
// queue is full. Submit must not be called after Close.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Close stops accepting work and waits for every queued function to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}
