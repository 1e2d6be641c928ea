package session

import (
	"context"
	"sync"

	"tableflip.dev/gridstate/pkg/layout"
)

// NewMemoryClient returns an in-process Client. It backs tests and the
// CLI when no session endpoint is configured; state lives only as long
// as the process.
func NewMemoryClient() Client {
	return &memoryClient{sessions: make(map[layout.Key]Payload)}
}

type memoryClient struct {
	mu       sync.Mutex
	sessions map[layout.Key]Payload
}

func (m *memoryClient) Get(_ context.Context, key layout.Key) (Payload, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.sessions[key]
	if !ok || p.Empty() {
		return Payload{}, false, nil
	}
	return p, true, nil
}

func (m *memoryClient) Put(_ context.Context, key layout.Key, payload Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key] = payload
	return nil
}

func (m *memoryClient) Delete(_ context.Context, key layout.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}
