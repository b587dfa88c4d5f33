// Package nolookup provides the dictionary used when no StarDict database is configured.
package nolookup

import (
	"context"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Stub finds nothing, so every word is created without enrichment.
type Stub struct{}

// NewStub creates a new no-op dictionary.
func NewStub() *Stub { return &Stub{} }

// Lookup always returns an empty result.
func (s *Stub) Lookup(ctx context.Context, words []string) (map[string]domain.WordEnrichment, error) {
	return map[string]domain.WordEnrichment{}, nil
}
