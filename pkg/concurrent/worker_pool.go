package concurrent

import (
	"sync"

	"go.uber.org/zap"
)

type JobFunc[T any, G any] func(job T) G

type indexedJob[T any] struct {
	index int
	job   T
}

type IndexedResult[G any] struct {
	Index  int
	Result G
}

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan indexedJob[T]
	results    chan IndexedResult[G]
	wg         sync.WaitGroup
	logger     *zap.Logger
}

// NewWorkerPool. resultQueueSize must cover every job added before Wait is called,
// results are only drained after the workers are done.
func NewWorkerPool[T any, G any](numWorkers, resultQueueSize int, logger *zap.Logger) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan indexedJob[T], numWorkers),
		results:    make(chan IndexedResult[G], resultQueueSize),
		logger:     logger,
	}
}

func (wp *WorkerPool[T, G]) worker(id int, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	processed := 0
	for job := range wp.jobQueue {
		wp.results <- IndexedResult[G]{Index: job.index, Result: jobFunc(job.job)}
		processed++
	}
	wp.logger.Debug("worker finished", zap.Int("worker", id), zap.Int("jobs", processed))
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(index int, job T) {
	wp.jobQueue <- indexedJob[T]{index: index, job: job}
}

func (wp *WorkerPool[T, G]) CollectResults() chan IndexedResult[G] {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Run processes every job on numWorkers goroutines and returns the results in job order.
func Run[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G], logger *zap.Logger) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs), logger)
	wp.Start(jobFunc)
	for i, job := range jobs {
		wp.AddJob(i, job)
	}
	wp.Close()
	wp.Wait()

	results := make([]G, len(jobs))
	for r := range wp.CollectResults() {
		results[r.Index] = r.Result
	}
	return results
}
