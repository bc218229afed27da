package sequencer

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// DefaultQueueCapacity bounds how many calls may wait on one user
const DefaultQueueCapacity = 100

// Job is a unit of work that must not overlap with other jobs for the same user
type Job func(ctx context.Context) error

// Sequencer runs jobs one at a time per username. Jobs for different users run
// concurrently. It sits on top of the database row locks and keeps a user's
// balance mutations from racing each other inside this process.
type Sequencer struct {
	logger   coreport.Logger
	capacity int

	// User-based queues for strict ordering
	userQueues     sync.Map // map[string]chan *jobRequest
	queueWaitGroup sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type jobRequest struct {
	ctx        context.Context
	job        Job
	resultChan chan error
}

// NewSequencer creates a sequencer; capacity <= 0 uses DefaultQueueCapacity
func NewSequencer(logger coreport.Logger, capacity int) *Sequencer {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Sequencer{
		logger:   logger,
		capacity: capacity,
	}
}

// Run queues job behind any earlier job for username and waits for its result.
// If ctx ends while waiting, Run returns ctx.Err(); a job that already started
// still runs to completion.
func (s *Sequencer) Run(ctx context.Context, username string, job Job) error {
	if job == nil {
		panic("sequencer job cannot be nil")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errs.ErrInternalServer
	}

	resultChan := make(chan error, 1)

	var queue chan *jobRequest
	queueIface, loaded := s.userQueues.LoadOrStore(username, make(chan *jobRequest, s.capacity))
	if queueCh, ok := queueIface.(chan *jobRequest); ok {
		queue = queueCh
	} else {
		s.logger.Error("Failed to type assert queue channel", nil)
		return errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		s.logger.Debug("Starting queue worker for user", map[string]any{
			"username": username,
		})
		s.queueWaitGroup.Add(1)
		go s.processUserJobs(username, queue)
	}

	req := &jobRequest{ctx: ctx, job: job, resultChan: resultChan}

	select {
	case queue <- req:
	case <-ctx.Done():
		s.logger.Warn("Context canceled while enqueueing job", map[string]any{
			"username": username,
			"error":    ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-resultChan:
		return err
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for job result", map[string]any{
			"username": username,
			"error":    ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (s *Sequencer) processUserJobs(username string, queue chan *jobRequest) {
	defer s.queueWaitGroup.Done()

	for req := range queue {
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- err
			close(req.resultChan)
			continue
		}

		req.resultChan <- s.runJob(username, req)
		close(req.resultChan)
	}

	s.logger.Debug("Queue worker stopped", map[string]any{
		"username": username,
	})
}

func (s *Sequencer) runJob(username string, req *jobRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Job panicked", map[string]any{
				"username": username,
				"panic":    r,
			})
			err = errs.ErrInternalServer
		}
	}()
	return req.job(req.ctx)
}

// Shutdown stops accepting jobs, lets queued jobs finish and waits for the workers
func (s *Sequencer) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.userQueues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *jobRequest); ok {
			close(queue)
		}
		return true
	})

	s.queueWaitGroup.Wait()
	s.logger.Info("Sequencer shut down", nil)
}
