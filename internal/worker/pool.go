// Package worker runs fire-and-forget jobs (currently outbound email) on a
// small in-process pool so request handlers never block on SMTP.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type Job func(ctx context.Context)

type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
	log  zerolog.Logger
}

func NewPool(size, queueDepth int, log zerolog.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	if queueDepth < 1 {
		queueDepth = 64
	}
	p := &Pool{
		jobs: make(chan Job, queueDepth),
		log:  log.With().Str("component", "worker_pool").Logger(),
	}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.run(i)
	}
	return p
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.log.Error().Int("worker", id).Interface("panic", r).Msg("job panicked")
				}
			}()
			job(context.Background())
		}()
	}
}

// Submit enqueues a job. It reports false when the queue is full; the job is
// dropped rather than blocking the caller.
func (p *Pool) Submit(job Job) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		p.log.Warn().Msg("job queue full, dropping job")
		return false
	}
}

// Shutdown stops accepting work and waits for in-flight jobs to finish.
func (p *Pool) Shutdown() {
	close(p.jobs)
	p.wg.Wait()
}
