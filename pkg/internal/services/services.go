// Package services holds the query and mutation entry points. Ownership
// and authentication checks happen here, at the boundary, before any fact
// is written; events are published only after their durable write
// succeeded.
package services

import (
	"errors"

	"github.com/conclave-dev/conclave/pkg/internal/bus"
	"github.com/conclave-dev/conclave/pkg/internal/store"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("not authorized for this subject")
	ErrNotFound        = errors.New("subject not found")
	ErrValidation      = errors.New("validation failed")
)

type Service struct {
	facts  store.FactStore
	events *bus.Bus
}

func NewService(facts store.FactStore, events *bus.Bus) *Service {
	return &Service{facts: facts, events: events}
}
