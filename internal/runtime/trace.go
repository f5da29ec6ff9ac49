package runtime

import "sync"

// Recorder collects the ordered trace of executed operator actions.
//
// A single solve run is strictly sequential, but hooks may hand the
// recorder to other goroutines (e.g. a metrics pump), so Record and
// Snapshot are guarded by a mutex.
type Recorder struct {
	mu      sync.Mutex
	actions []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Record appends an executed action to the trace.
func (r *Recorder) Record(action string) {
	r.mu.Lock()
	r.actions = append(r.actions, action)
	r.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the trace.
func (r *Recorder) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.actions))
	copy(out, r.actions)
	return out
}

// Len returns the number of recorded actions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.actions)
}
