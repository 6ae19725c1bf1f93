// Package idgen provides id generators for newly created tasks.
package idgen

import (
	"github.com/google/uuid"

	"github.com/runoshun/todoboard/internal/domain"
)

// Ensure UUID implements domain.IDGenerator.
var _ domain.IDGenerator = UUID{}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID.
func (UUID) NewID() string {
	return uuid.NewString()
}
