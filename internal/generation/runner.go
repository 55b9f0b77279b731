package generation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"shorts_studio/internal/agent"
	"shorts_studio/internal/task"
)

// AgentClient is the generation service as seen by the orchestrators.
type AgentClient interface {
	Call(ctx context.Context, prompt, agentID string) (*agent.Result, error)
}

type callOutcome struct {
	result *agent.Result
	err    error
}

// runner owns the task bookkeeping shared by both orchestrators: the set of
// running tasks and the teardown signal.
type runner struct {
	client AgentClient
	logger *slog.Logger

	mu        sync.Mutex
	running   map[*task.Task]struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

func newRunner(client AgentClient, logger *slog.Logger) *runner {
	return &runner{
		client:  client,
		logger:  logger,
		running: make(map[*task.Task]struct{}),
		closed:  make(chan struct{}),
	}
}

// begin starts a new task and the agent call behind it. The call runs on a
// context that is never cancelled by the consumer: abandoning a task stops
// waiting for the call, it does not abort it.
func (r *runner) begin(ctx context.Context, prompt, agentID string) (*task.Task, <-chan callOutcome, error) {
	t := task.New()
	if err := t.Start(); err != nil {
		return nil, nil, fmt.Errorf("start task: %w", err)
	}

	r.mu.Lock()
	r.running[t] = struct{}{}
	r.mu.Unlock()

	out := make(chan callOutcome, 1)
	go func() {
		result, err := r.client.Call(context.WithoutCancel(ctx), prompt, agentID)
		// the consumer settles the task only after reading out, so a task
		// already done here was abandoned
		select {
		case <-t.Done():
			r.logger.Info("dropping late agent result",
				"agent_id", agentID,
				"state", t.State(),
				"waited", t.Duration(),
				"error", err,
			)
		default:
		}
		out <- callOutcome{result: result, err: err}
	}()

	return t, out, nil
}

func (r *runner) isClosed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}

func (r *runner) end(t *task.Task) {
	r.mu.Lock()
	delete(r.running, t)
	r.mu.Unlock()
}

// Active reports whether a call is outstanding.
func (r *runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.running) > 0
}

// Close tears the orchestrator down. Outstanding calls return ErrAbandoned
// and later calls return ErrAbandoned without contacting the agent.
func (r *runner) Close() {
	r.closeOnce.Do(func() { close(r.closed) })
}
