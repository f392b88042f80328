package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Trips          int    `json:"trips"`
	CurrentTripID  string `json:"current_trip_id,omitempty"`
	Loading        bool   `json:"loading"`
	LastError      string `json:"last_error,omitempty"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}

	lastErr := ""
	if s.lastErr != nil {
		lastErr = s.lastErr.Error()
	}

	return StoreState{
		Trips:          len(s.trips),
		CurrentTripID:  s.currentID,
		Loading:        s.loading,
		LastError:      lastErr,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
