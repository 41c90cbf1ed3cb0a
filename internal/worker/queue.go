package worker

import (
	"context"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// Queue runs submitted jobs one at a time, in submission order
type Queue struct {
	jobs []Job
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Submit adds a job to the queue
func (q *Queue) Submit(job Job) {
	q.jobs = append(q.jobs, job)
}

// Len returns the number of pending jobs
func (q *Queue) Len() int {
	return len(q.jobs)
}

// Run executes every pending job and returns their results in order.
// Once ctx is done the remaining jobs are not started; cancel reports them.
func (q *Queue) Run(ctx context.Context, cancel func(Job, error) Result) []Result {
	jobs := q.jobs
	q.jobs = nil

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			results = append(results, cancel(job, err))
			continue
		}
		results = append(results, job.Execute(ctx))
	}
	return results
}
