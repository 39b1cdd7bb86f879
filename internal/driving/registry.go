package driving

import (
	"fmt"
	"sync"
)

// Registry holds one tracker per user and device for the lifetime of a
// tracking session.
type Registry struct {
	mu       sync.Mutex
	trackers map[string]*Tracker
	config   Config
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{trackers: map[string]*Tracker{}, config: cfg}
}

func trackerKey(userID int, deviceID string) string {
	if deviceID == "" {
		deviceID = "default"
	}
	return fmt.Sprintf("user_%d_%s", userID, deviceID)
}

// Get returns the tracker for the user/device pair, creating it on first
// use.
func (r *Registry) Get(userID int, deviceID string) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := trackerKey(userID, deviceID)
	tracker, ok := r.trackers[key]
	if !ok {
		tracker = NewTracker(r.config)
		r.trackers[key] = tracker
	}
	return tracker
}

// Drop removes the tracker when the user stops tracking, discarding all
// session state.
func (r *Registry) Drop(userID int, deviceID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := trackerKey(userID, deviceID)
	delete(r.trackers, key)
	return key
}
