package store

import (
	"context"

	"clinibook/internal/domain"
)

// An UpdateFunc receives the current collection and returns the collection to
// persist in its place. Returning an error aborts the update without writing.
type UpdateFunc func(appts []domain.Appointment) ([]domain.Appointment, error)

// AppointmentStore owns the canonical appointment collection. Load never
// fails on missing or undecodable persisted state; it falls back to the
// built-in seed collection instead. Save replaces the whole collection
// atomically. Update runs a load-mutate-save sequence as one atomic step so
// that no other writer can interleave between the read and the write.
type AppointmentStore interface {
	Load(ctx context.Context) ([]domain.Appointment, error)
	Save(ctx context.Context, appts []domain.Appointment) error
	Update(ctx context.Context, fn UpdateFunc) error
}
