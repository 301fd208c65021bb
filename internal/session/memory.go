package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

// MemoryDirectory keeps sessions in process memory. Volatile by design;
// a janitor goroutine prunes expired entries periodically.
type MemoryDirectory struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	opts     Options
	stop     chan struct{}
	stopOnce sync.Once
}

var _ Directory = (*MemoryDirectory)(nil)

// NewMemoryDirectory builds an in-memory directory and starts its
// janitor. Close stops the janitor.
func NewMemoryDirectory(opts Options) *MemoryDirectory {
	d := &MemoryDirectory{
		sessions: make(map[string]memoryEntry),
		opts:     opts.withDefaults(),
		stop:     make(chan struct{}),
	}
	go d.janitor()
	return d
}

func (d *MemoryDirectory) Create(ctx context.Context, identity Identity) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	d.mu.Lock()
	d.sessions[token] = memoryEntry{identity: identity, expiresAt: time.Now().Add(d.opts.TTL)}
	d.mu.Unlock()
	return token, nil
}

func (d *MemoryDirectory) Resolve(ctx context.Context, token string) (*Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	entry, ok := d.sessions[token]
	if !ok {
		return nil, ErrInvalid
	}
	if time.Now().After(entry.expiresAt) {
		delete(d.sessions, token)
		return nil, ErrInvalid
	}
	if d.opts.Sliding {
		entry.expiresAt = time.Now().Add(d.opts.TTL)
		d.sessions[token] = entry
	}
	identity := entry.identity
	return &identity, nil
}

func (d *MemoryDirectory) Revoke(ctx context.Context, token string) error {
	d.mu.Lock()
	delete(d.sessions, token)
	d.mu.Unlock()
	return nil
}

// Len reports the number of live (possibly expired, not yet pruned)
// sessions. Used by tests and the readiness probe.
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}

// Close stops the janitor goroutine.
func (d *MemoryDirectory) Close() {
	d.stopOnce.Do(func() { close(d.stop) })
}

func (d *MemoryDirectory) janitor() {
	interval := d.opts.TTL / 2
	if interval > time.Hour {
		interval = time.Hour
	}
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			now := time.Now()
			d.mu.Lock()
			for token, entry := range d.sessions {
				if now.After(entry.expiresAt) {
					delete(d.sessions, token)
				}
			}
			d.mu.Unlock()
		}
	}
}
