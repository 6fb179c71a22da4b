package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStore is an in-memory store of asynchronous clustering jobs. Completed
// jobs are evicted after their TTL by a background sweep.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	ttl  time.Duration
	stop chan struct{}
}

// NewJobStore creates a store and starts its cleanup loop.
func NewJobStore(ttl, cleanupInterval time.Duration) *JobStore {
	s := &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go s.cleanupLoop(cleanupInterval)
	return s
}

// Create registers a new pending job and returns it.
func (s *JobStore) Create() *Job {
	job := &Job{
		ID:          uuid.New().String(),
		Status:      JobPending,
		SubmittedAt: time.Now(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
	return job
}

// Get returns a snapshot of the job with the given id.
func (s *JobStore) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// SetRunning marks the job as started.
func (s *JobStore) SetRunning(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[id]; ok {
		job.Status = JobRunning
	}
}

// SetResult completes the job with a result.
func (s *JobStore) SetResult(id string, result *ClusterResponse) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[id]; ok {
		job.Status = JobCompleted
		job.Result = result
		job.CompletedAt = &now
	}
}

// SetError fails the job with an error message.
func (s *JobStore) SetError(id string, message string) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[id]; ok {
		job.Status = JobFailed
		job.Error = message
		job.CompletedAt = &now
	}
}

// Close stops the cleanup loop.
func (s *JobStore) Close() {
	close(s.stop)
}

func (s *JobStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *JobStore) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(s.jobs, id)
		}
	}
}
