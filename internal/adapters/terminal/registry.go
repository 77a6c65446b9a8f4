package terminal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// Registry holds at most one live terminal per channel. Sessions are never
// disposed on their own; they live until CloseAll at process exit.
type Registry struct {
	mu       sync.Mutex
	factory  Factory
	sessions map[domain.Channel]Terminal
}

// NewRegistry creates an empty registry backed by factory
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory:  factory,
		sessions: make(map[domain.Channel]Terminal),
	}
}

// Get returns the live session for channel, or nil
func (r *Registry) Get(channel domain.Channel) Terminal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[channel]
}

// GetOrCreate returns the session for channel, starting one if needed.
// created reports whether a new session was started.
func (r *Registry) GetOrCreate(channel domain.Channel) (term Terminal, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if term, ok := r.sessions[channel]; ok {
		return term, false, nil
	}

	term, err = r.factory(channel.DisplayName())
	if err != nil {
		return nil, false, fmt.Errorf("failed to start %s: %w", channel.DisplayName(), err)
	}
	r.sessions[channel] = term
	return term, true, nil
}

// CloseAll closes every session in channel order and forgets them
func (r *Registry) CloseAll(ctx context.Context) error {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[domain.Channel]Terminal)
	r.mu.Unlock()

	channels := make([]domain.Channel, 0, len(sessions))
	for ch := range sessions {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })

	var errs []error
	for _, ch := range channels {
		if err := sessions[ch].Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", ch.DisplayName(), err))
		}
	}
	return errors.Join(errs...)
}
