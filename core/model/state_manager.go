// Package model provides shared state management and persistence helpers for
// partls estimators.
package model

import (
	"fmt"
	"sync"
)

// StateManager tracks the fitted state of an estimator in a thread-safe
// manner. Estimators hold it by composition rather than embedding.
type StateManager struct {
	Fitted bool // Public for gob encoding
	mu     sync.RWMutex

	// Optional metadata - Public for gob encoding
	NSamples    int
	NAttributes int
	NPartitions int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the estimator has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the estimator as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset clears the fitted state and metadata.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NSamples = 0
	s.NAttributes = 0
	s.NPartitions = 0
}

// SetDimensions records the training data shape.
func (s *StateManager) SetDimensions(nSamples, nAttributes, nPartitions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NSamples = nSamples
	s.NAttributes = nAttributes
	s.NPartitions = nPartitions
}

// Dimensions returns the recorded training data shape.
func (s *StateManager) Dimensions() (nSamples, nAttributes, nPartitions int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NSamples, s.NAttributes, s.NPartitions
}

// String implements fmt.Stringer for debugging.
func (s *StateManager) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("StateManager{fitted: %v, samples: %d, attributes: %d, partitions: %d}",
		s.Fitted, s.NSamples, s.NAttributes, s.NPartitions)
}
