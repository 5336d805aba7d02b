// Package memory holds the appointment collection in process memory with the
// same contract as the bolt store, including the seed fallback before the
// first save.
package memory

import (
	"context"
	"sync"

	"clinibook/internal/domain"
	"clinibook/internal/store"
)

type Store struct {
	mu    sync.Mutex
	appts []domain.Appointment
	saved bool
}

func NewStore() *Store {
	return &Store{}
}

// NewStoreWith starts from the given collection instead of the seed.
func NewStoreWith(appts []domain.Appointment) *Store {
	s := &Store{}
	s.appts = append(s.appts, appts...)
	s.saved = true
	return s
}

func (s *Store) Load(ctx context.Context) ([]domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(), nil
}

func (s *Store) Save(ctx context.Context, appts []domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(appts)
	return nil
}

// Update holds the store lock across the whole load-mutate-save sequence.
func (s *Store) Update(ctx context.Context, fn store.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current())
	if err != nil {
		return err
	}
	s.replace(next)
	return nil
}

func (s *Store) current() []domain.Appointment {
	if !s.saved {
		return store.Seed()
	}
	out := make([]domain.Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}

func (s *Store) replace(appts []domain.Appointment) {
	s.appts = make([]domain.Appointment, len(appts))
	copy(s.appts, appts)
	s.saved = true
}
