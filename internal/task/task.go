// Package task tracks the lifecycle of a single asynchronous operation.
//
// A Task moves idle → running → one of succeeded, failed or abandoned, and
// never leaves a terminal state. Abandonment is how late results are
// suppressed: once a consumer walks away, the eventual Succeed or Fail from
// the still-running call is refused and the caller must drop its result.
package task

import (
	"errors"
	"sync"
	"time"
)

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateAbandoned State = "abandoned"
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateAbandoned
}

var ErrAlreadyStarted = errors.New("task already started")

type Task struct {
	mu         sync.Mutex
	state      State
	err        error
	startedAt  time.Time
	finishedAt time.Time
	done       chan struct{}
}

func New() *Task {
	return &Task{state: StateIdle, done: make(chan struct{})}
}

func (t *Task) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateIdle {
		return ErrAlreadyStarted
	}
	t.state = StateRunning
	t.startedAt = time.Now()
	return nil
}

// Succeed completes a running task. It returns false if the task was not
// running, in which case the result must be discarded.
func (t *Task) Succeed() bool {
	return t.finish(StateSucceeded, nil)
}

// Fail completes a running task with err. Same contract as Succeed.
func (t *Task) Fail(err error) bool {
	return t.finish(StateFailed, err)
}

// Abandon detaches the consumer from a running task.
func (t *Task) Abandon() bool {
	return t.finish(StateAbandoned, nil)
}

func (t *Task) finish(state State, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning {
		return false
	}
	t.state = state
	t.err = err
	t.finishedAt = time.Now()
	close(t.done)
	return true
}

func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Duration is the running time, up to now for a task still running.
func (t *Task) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.startedAt.IsZero():
		return 0
	case t.finishedAt.IsZero():
		return time.Since(t.startedAt)
	default:
		return t.finishedAt.Sub(t.startedAt)
	}
}

// Done is closed when the task reaches a terminal state.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
