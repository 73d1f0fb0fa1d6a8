package asset

import "sync"

// Handle is a one-shot readiness signal for an asynchronously prepared asset.
// The navigation core does not apply position or facing writes to a target
// whose handle has not finished; that is a precondition, not an error.
type Handle struct {
	done chan struct{}

	mu  sync.Mutex
	err error
}

func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Finish marks the asset ready (or failed). Calling Finish more than once
// panics, matching the one-shot contract.
func (h *Handle) Finish(err error) {
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()
	close(h.done)
}

// Ready reports whether Finish has been called with no error.
func (h *Handle) Ready() bool {
	select {
	case <-h.done:
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.err == nil
	default:
		return false
	}
}

// Err returns the load error, if any, once finished.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.err
	default:
		return nil
	}
}

// Done exposes the completion channel for callers that want to join on it.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
