package notifier

import (
	"os"
	"strings"
	"sync"
)

// DefaultStatePath is where the last main-agent session key is
// persisted when no override is configured.
const DefaultStatePath = "/tmp/hooks-last-main-session.txt"

// LastMainSession tracks the most recently seen main-agent session key,
// both in memory and on disk, so sub-agent events can still route
// notifications to the right place after a process restart.
type LastMainSession struct {
	path string

	mu    sync.RWMutex
	key   string
	ready bool
}

// NewLastMainSession constructs a tracker backed by path. An empty path
// uses DefaultStatePath.
func NewLastMainSession(path string) *LastMainSession {
	if path == "" {
		path = DefaultStatePath
	}
	return &LastMainSession{path: path}
}

// Set records key as the last main-agent session key, in memory and on
// disk, last-writer-wins.
func (s *LastMainSession) Set(key string) {
	s.mu.Lock()
	s.key = key
	s.ready = true
	s.mu.Unlock()
	_ = os.WriteFile(s.path, []byte(key), 0o644)
}

// Get returns the last known main-agent session key, preferring the
// in-memory value and falling back to the disk cache. "unknown" is
// returned when neither is available.
func (s *LastMainSession) Get() string {
	s.mu.RLock()
	key, ready := s.key, s.ready
	s.mu.RUnlock()
	if ready {
		return key
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "unknown"
	}
	key = strings.TrimSpace(string(data))
	if key == "" {
		return "unknown"
	}
	return key
}
